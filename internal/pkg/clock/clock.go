package clock

import "time"

// Clock supplies the current time in the organization's timezone. All
// attendance threshold and cutoff comparisons go through a single Clock so
// that services stay deterministic under test.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *systemClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock pinned to a single instant, used in tests.
type Fixed struct {
	Instant time.Time
}

func NewFixed(instant time.Time) *Fixed {
	return &Fixed{Instant: instant}
}

func (c *Fixed) Now() time.Time {
	return c.Instant
}

func (c *Fixed) Location() *time.Location {
	return c.Instant.Location()
}

// DateOf truncates t to its calendar date, midnight in t's location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date when both
// are viewed in a's location.
func SameDate(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SecondsIntoDay returns the time-of-day of t as whole seconds since
// midnight, ignoring the date part.
func SecondsIntoDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
