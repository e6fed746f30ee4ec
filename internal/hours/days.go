package hours

import (
	"strings"
	"time"
)

// Weekdays is a set of days of the week, one bit per time.Weekday.
type Weekdays uint8

const (
	MondayToFriday   = Weekdays(1<<time.Monday | 1<<time.Tuesday | 1<<time.Wednesday | 1<<time.Thursday | 1<<time.Friday)
	MondayToSaturday = MondayToFriday | Weekdays(1<<time.Saturday)
	EveryDay         = MondayToSaturday | Weekdays(1<<time.Sunday)
)

// NewWeekdays builds a set from the given days.
func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w |= 1 << d
	}
	return w
}

// Has reports whether d is in the set.
func (w Weekdays) Has(d time.Weekday) bool {
	return w&(1<<d) != 0
}

// Days lists the set in Sunday-first order.
func (w Weekdays) Days() []time.Weekday {
	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

var dayNames = map[string]time.Weekday{
	"вс": time.Sunday, "воскресенье": time.Sunday, "sun": time.Sunday, "sunday": time.Sunday,
	"пн": time.Monday, "понедельник": time.Monday, "mon": time.Monday, "monday": time.Monday,
	"вт": time.Tuesday, "вторник": time.Tuesday, "tue": time.Tuesday, "tuesday": time.Tuesday,
	"ср": time.Wednesday, "среда": time.Wednesday, "wed": time.Wednesday, "wednesday": time.Wednesday,
	"чт": time.Thursday, "четверг": time.Thursday, "thu": time.Thursday, "thursday": time.Thursday,
	"пт": time.Friday, "пятница": time.Friday, "fri": time.Friday, "friday": time.Friday,
	"сб": time.Saturday, "суббота": time.Saturday, "sat": time.Saturday, "saturday": time.Saturday,
}

// ParseDays parses a weekday spec: a single name ("Пн", "Понедельник",
// "monday"), a range ("Пн-Пт", "Сб-Вс", wrapping past Sunday is allowed) or a
// comma separated list of either. Ranges follow the Monday-first week.
func ParseDays(spec string) (Weekdays, bool) {
	var set Weekdays
	parts := strings.Split(spec, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		bounds := strings.FieldsFunc(part, func(r rune) bool {
			return r == '-' || r == '–' || r == '—'
		})
		switch len(bounds) {
		case 1:
			d, ok := dayName(bounds[0])
			if !ok {
				return 0, false
			}
			set |= NewWeekdays(d)
		case 2:
			from, ok := dayName(bounds[0])
			if !ok {
				return 0, false
			}
			to, ok := dayName(bounds[1])
			if !ok {
				return 0, false
			}
			set |= span(from, to)
		default:
			return 0, false
		}
	}
	return set, set != 0
}

func dayName(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.Trim(strings.TrimSpace(s), ".:"))
	d, ok := dayNames[s]
	return d, ok
}

// span walks from..to in Monday-first order, wrapping after Sunday.
func span(from, to time.Weekday) Weekdays {
	var set Weekdays
	d := from
	for i := 0; i < 7; i++ {
		set |= NewWeekdays(d)
		if d == to {
			break
		}
		d = (d + 1) % 7
	}
	return set
}
