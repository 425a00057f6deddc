package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day in minutes since midnight.
// Valid values are 00:00 through 24:00; 24:00 is an end-of-day
// sentinel allowed only as the end of a range.
type Clock int

// EndOfDay is the 24:00 sentinel.
const EndOfDay Clock = 24 * 60

// ParseClock parses "HH:MM" (24-hour) into a Clock.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %s", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %s", s)
	}

	c := Clock(hour*60 + minute)
	if c > EndOfDay {
		return 0, fmt.Errorf("time out of range: %s", s)
	}
	return c, nil
}

// MustClock parses "HH:MM" and panics on error. For fixtures and tests.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the clock as "HH:MM"; EndOfDay renders as "24:00".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Range is a half-open [From, To) interval within a single day.
type Range struct {
	From Clock
	To   Clock
}

// IsValid reports whether the range is well-formed: strictly positive
// length within a single day.
func (r Range) IsValid() bool {
	return r.From >= 0 && r.From < r.To && r.To <= EndOfDay
}

// Contains reports whether c falls inside [From, To). A To of 24:00
// covers everything up to and including the end of the day.
func (r Range) Contains(c Clock) bool {
	if c < r.From {
		return false
	}
	if r.To == EndOfDay {
		return c <= EndOfDay
	}
	return c < r.To
}

// Overlaps reports whether two ranges intersect. Touching ranges
// ([09:00,12:00) and [12:00,18:00)) do not overlap.
func (r Range) Overlaps(o Range) bool {
	return r.From < o.To && o.From < r.To
}

// Weekday identifies a day of the week, Monday-first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayKeys = [...]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Weekdays returns all weekdays in Monday..Sunday order.
func Weekdays() [7]Weekday {
	return [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// String returns the English day name ("Monday"). Panics on values
// outside Monday..Sunday: an unknown weekday is a caller bug.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		panic(fmt.Sprintf("schedule: invalid weekday %d", int(d)))
	}
	return weekdayNames[d]
}

// Key returns the lowercase wire name ("monday").
func (d Weekday) Key() string {
	if d < Monday || d > Sunday {
		panic(fmt.Sprintf("schedule: invalid weekday %d", int(d)))
	}
	return weekdayKeys[d]
}

// WeekdayOf converts the standard library's Sunday-first weekday.
func WeekdayOf(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(int(d) - 1)
}

// Day is one weekday's declaration: an explicit open flag plus zero or
// more time slots in the order they were entered. Open with zero slots
// means "open, no declared hours" and is not the same as closed.
type Day struct {
	Open  bool
	Slots []Range
}

// Weekly is a full per-weekday schedule. A nil Weekly means the entity
// has no schedule at all and is always available; a non-nil Weekly with
// every day closed is a deliberate "never available" declaration.
type Weekly map[Weekday]Day

// Normalize ensures all seven weekdays are present, filling missing
// days as closed. Returns the receiver for chaining; nil stays nil.
func (w Weekly) Normalize() Weekly {
	if w == nil {
		return nil
	}
	for _, d := range Weekdays() {
		if _, ok := w[d]; !ok {
			w[d] = Day{}
		}
	}
	return w
}

// Instant is a query moment in restaurant-local wall-clock terms.
type Instant struct {
	Day  Weekday
	Time Clock
}

// At derives an Instant from a time.Time, using its wall-clock fields.
func At(t time.Time) Instant {
	return Instant{
		Day:  WeekdayOf(t.Weekday()),
		Time: Clock(t.Hour()*60 + t.Minute()),
	}
}
