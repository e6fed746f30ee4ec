package types

import "time"

// Kind identifies which directory a listing belongs to.
type Kind string

const (
	KindSchool  Kind = "school"
	KindService Kind = "service"
	KindShop    Kind = "shop"
)

// Valid reports whether k is one of the known listing kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSchool, KindService, KindShop:
		return true
	}
	return false
}

// DaySchedule is one row of a weekly opening table.
//
// Day accepts a single weekday ("Пн", "Понедельник", "mon"), a range ("Пн-Пт")
// or a comma list ("Пн, Ср, Пт"). Hours is either an HH:MM-HH:MM range or a
// closed-day marker such as "Выходной".
type DaySchedule struct {
	Day   string `json:"day"   yaml:"day"   validate:"required,weekdays"`
	Hours string `json:"hours" yaml:"hours" validate:"required"`
}

// HoursShape tells which representation of WorkingHours is in effect.
type HoursShape int

const (
	ShapeText HoursShape = iota
	ShapeMinutePair
	ShapeWeekly
)

// WorkingHours is the schedule attached to a listing. Exactly one shape is
// used when evaluating: Schedule wins over the OpenTime/CloseTime pair, which
// wins over Text. An empty value evaluates as Text with nothing to parse.
type WorkingHours struct {
	// Text is a free-form string like "10:00-19:00" or "Пн-Пт: 9:00-18:00".
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// OpenTime and CloseTime are minutes since midnight.
	OpenTime  *int `json:"open_time,omitempty"  yaml:"open_time,omitempty"  validate:"omitempty,min=0,max=1440"`
	CloseTime *int `json:"close_time,omitempty" yaml:"close_time,omitempty" validate:"omitempty,min=0,max=1440"`

	Schedule []DaySchedule `json:"schedule,omitempty" yaml:"schedule,omitempty" validate:"omitempty,dive"`
}

// Shape returns the representation Evaluate should use.
func (h WorkingHours) Shape() HoursShape {
	switch {
	case len(h.Schedule) > 0:
		return ShapeWeekly
	case h.OpenTime != nil && h.CloseTime != nil:
		return ShapeMinutePair
	default:
		return ShapeText
	}
}

// Listing is a directory entry: a riding school, a service center or a shop.
//
// ID is assigned by storage and never changes. Tags, Courses, Services and
// Features are unordered and may contain duplicates; a nil slice is treated
// the same as an empty one everywhere.
type Listing struct {
	ID          int64        `json:"id"          yaml:"id,omitempty"`
	Kind        Kind         `json:"kind"        yaml:"kind"        validate:"required,oneof=school service shop"`
	Name        string       `json:"name"        yaml:"name"        validate:"required"`
	Description string       `json:"description" yaml:"description"`
	Category    string       `json:"category"    yaml:"category"`
	Location    string       `json:"location"    yaml:"location"`
	Phone       string       `json:"phone"       yaml:"phone"`
	Website     string       `json:"website"     yaml:"website"`
	Rating      float64      `json:"rating"      yaml:"rating"      validate:"gte=0,lte=5"`
	Hours       WorkingHours `json:"working_hours" yaml:"working_hours"`
	Tags        []string     `json:"tags"        yaml:"tags"`
	Courses     []string     `json:"courses"     yaml:"courses"`
	Services    []string     `json:"services"    yaml:"services"`
	Features    []string     `json:"features"    yaml:"features"`
	CreatedAt   time.Time    `json:"created_at"  yaml:"created_at,omitempty"`
}

// Labels returns every string the tag filter matches against.
func (l Listing) Labels() []string {
	out := make([]string, 0, len(l.Tags)+len(l.Courses)+len(l.Services)+len(l.Features))
	out = append(out, l.Tags...)
	out = append(out, l.Courses...)
	out = append(out, l.Services...)
	out = append(out, l.Features...)
	return out
}
