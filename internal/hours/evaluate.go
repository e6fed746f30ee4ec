package hours

import (
	"time"

	"github.com/aanand-mishra/motoportal-api/internal/types"
)

// Policy carries the per-kind assumptions used when a schedule does not say
// everything itself.
type Policy struct {
	// Workdays gates TextRange schedules and, when GateMinutePairs is set,
	// MinutePair schedules.
	Workdays Weekdays

	// Default replaces a text schedule that has no parsable range.
	Default Range

	GateMinutePairs bool
}

var (
	SchoolPolicy  = Policy{Workdays: MondayToFriday, Default: MustParseRange("10:00-19:00")}
	ServicePolicy = Policy{Workdays: MondayToSaturday, Default: MustParseRange("09:00-18:00")}
	ShopPolicy    = Policy{Workdays: EveryDay, Default: MustParseRange("10:00-20:00")}
	GenericPolicy = Policy{Workdays: EveryDay, Default: MustParseRange("10:00-19:00")}
)

// DefaultPolicy returns the built-in policy for kind.
func DefaultPolicy(kind types.Kind) Policy {
	switch kind {
	case types.KindSchool:
		return SchoolPolicy
	case types.KindService:
		return ServicePolicy
	case types.KindShop:
		return ShopPolicy
	default:
		return GenericPolicy
	}
}

// Status is the outcome of one evaluation. Defaulted is set when the
// schedule could not be read and the policy's default range was used.
type Status struct {
	Open      bool `json:"open"`
	Defaulted bool `json:"defaulted"`
}

// IsOpen reports whether a business with schedule h is open at now.
func IsOpen(h types.WorkingHours, p Policy, now time.Time) bool {
	return Evaluate(h, p, now).Open
}

// Evaluate is IsOpen that also reports default substitution. It never fails:
// missing or unreadable input falls back to p.Default.
func Evaluate(h types.WorkingHours, p Policy, now time.Time) Status {
	minute := MinuteOfDay(now)

	switch h.Shape() {
	case types.ShapeWeekly:
		return evaluateWeekly(h.Schedule, p, now)

	case types.ShapeMinutePair:
		r := Range{Start: *h.OpenTime, End: *h.CloseTime}
		open := r.Contains(minute)
		if p.GateMinutePairs {
			open = open && p.Workdays.Has(now.Weekday())
		}
		return Status{Open: open}
	}

	r, ok := ParseRange(h.Text)
	if !ok {
		r = p.Default
	}
	return Status{
		Open:      p.Workdays.Has(now.Weekday()) && r.Contains(minute),
		Defaulted: !ok,
	}
}

// evaluateWeekly uses the first row whose day spec covers now. The table is
// its own day gate, so p.Workdays is not consulted.
func evaluateWeekly(rows []types.DaySchedule, p Policy, now time.Time) Status {
	for _, row := range rows {
		days, ok := ParseDays(row.Day)
		if !ok || !days.Has(now.Weekday()) {
			continue
		}

		if IsClosedMarker(row.Hours) {
			return Status{}
		}

		r, ok := ParseRange(row.Hours)
		if !ok {
			return Status{Open: p.Default.Contains(MinuteOfDay(now)), Defaulted: true}
		}
		return Status{Open: r.Contains(MinuteOfDay(now))}
	}

	return Status{}
}

const (
	LabelOpen   = "ОТКРЫТО"
	LabelClosed = "ЗАКРЫТО"
)

// Label returns the badge text shown on listing cards.
func Label(open bool) string {
	if open {
		return LabelOpen
	}
	return LabelClosed
}
