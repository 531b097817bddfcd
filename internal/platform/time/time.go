// Package time contains time related helpers
package time

import "time"

// Day is a UTC calendar day in YYYY-MM-DD form
// rate limit windows and boost days are keyed by Day
type Day string

// DayOf returns the UTC calendar day containing t
func DayOf(t time.Time) Day {
	return Day(t.UTC().Format("2006-01-02"))
}

// Today returns the current UTC calendar day
func Today() Day { return DayOf(time.Now()) }

// Time returns midnight UTC at the start of the day
// the zero time is returned for malformed days
func (d Day) Time() time.Time {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Next returns the following UTC day
func (d Day) Next() Day { return DayOf(d.Time().Add(24 * time.Hour)) }

// String returns the YYYY-MM-DD form
func (d Day) String() string { return string(d) }

// SameDay reports whether a and b fall on the same UTC calendar day
func SameDay(a, b time.Time) bool { return DayOf(a) == DayOf(b) }

// UntilMidnight returns the duration from t to the next UTC midnight
// callers use it to tell a rate limited user when the window resets
func UntilMidnight(t time.Time) time.Duration {
	u := t.UTC()
	next := DayOf(u).Next().Time()
	return next.Sub(u)
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
