// Package hours answers "is this business open right now" for directory
// listings. Every function here is pure: the current time is always passed in.
package hours

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Range is a half-open interval [Start, End) of minutes since midnight.
type Range struct {
	Start int
	End   int
}

// Contains reports whether minute falls inside the range. Ranges whose end is
// not after their start (for example "22:00-02:00") contain nothing.
func (r Range) Contains(minute int) bool {
	return r.Start < r.End && minute >= r.Start && minute < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", r.Start/60, r.Start%60, r.End/60, r.End%60)
}

// rangePattern finds H:MM-H:MM anywhere in a string. Seed data mixes plain
// hyphens with en and em dashes.
var rangePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[-–—]\s*(\d{1,2}):(\d{2})`)

// ParseRange extracts the first valid H:MM-H:MM range found in s. Matches
// with impossible clock values are skipped.
// The second result is false when nothing usable was found.
func ParseRange(s string) (Range, bool) {
	for _, m := range rangePattern.FindAllStringSubmatch(s, -1) {
		start, ok := clock(m[1], m[2])
		if !ok {
			continue
		}
		end, ok := clock(m[3], m[4])
		if !ok {
			continue
		}
		return Range{Start: start, End: end}, true
	}
	return Range{}, false
}

// MustParseRange is ParseRange for package-level defaults.
func MustParseRange(s string) Range {
	r, ok := ParseRange(s)
	if !ok {
		panic(fmt.Sprintf("hours: invalid range %q", s))
	}
	return r
}

func clock(h, m string) (int, bool) {
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	if hour > 24 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, false
	}
	return hour*60 + minute, true
}

// MinuteOfDay converts t's wall-clock hour and minute to minutes since
// midnight. Seconds are dropped, so 17:59:59 is minute 1079.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

var closedMarkers = []string{"выходной", "закрыто", "closed"}

// IsClosedMarker reports whether s marks a whole day as closed.
func IsClosedMarker(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, marker := range closedMarkers {
		if s == marker {
			return true
		}
	}
	return false
}
