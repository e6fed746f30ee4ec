package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/aanand-mishra/motoportal-api/internal/types"
)

const (
	SortDate  = "date"
	SortPrice = "price"
)

const dateLayout = "2006-01-02"

// EventCriteria selects events. Zero-valued fields do not restrict.
type EventCriteria struct {
	Search   string
	Category string

	FeaturedOnly bool

	// UpcomingOnly drops events dated before the day of now.
	UpcomingOnly bool
}

// FilterEvents returns the events matching c in their original order.
func FilterEvents(events []types.Event, c EventCriteria, now time.Time) []types.Event {
	search := fold(strings.TrimSpace(c.Search))
	today := now.Format(dateLayout)

	out := make([]types.Event, 0, len(events))
	for _, e := range events {
		if search != "" &&
			!strings.Contains(fold(e.Title), search) &&
			!strings.Contains(fold(e.Description), search) {
			continue
		}
		if !matchesCategory(e.Category, c.Category) {
			continue
		}
		if c.FeaturedOnly && !e.Featured {
			continue
		}
		// ISO dates order lexically.
		if c.UpcomingOnly && e.Date < today {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortEvents returns a copy of events ordered by key: SortDate (soonest
// first, then by start time), SortPrice (cheapest first) or SortNewest.
func SortEvents(events []types.Event, key string) []types.Event {
	out := slices.Clone(events)

	switch key {
	case SortDate:
		slices.SortStableFunc(out, func(a, b types.Event) int {
			if c := cmp.Compare(a.Date, b.Date); c != 0 {
				return c
			}
			return cmp.Compare(a.Time, b.Time)
		})
	case SortPrice:
		slices.SortStableFunc(out, func(a, b types.Event) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortNewest:
		slices.SortStableFunc(out, func(a, b types.Event) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return out
}

// DateLabel returns "Сегодня" or "Завтра" when date is the day of now or the
// day after, and "" otherwise or when date does not parse.
func DateLabel(date string, now time.Time) string {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return ""
	}

	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())

	switch {
	case d.Equal(today):
		return "Сегодня"
	case d.Equal(today.AddDate(0, 0, 1)):
		return "Завтра"
	}
	return ""
}
