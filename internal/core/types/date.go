// Package types provides common type aliases and utilities.
package types

import (
	"fmt"
	"time"
)

// Day is a civil calendar date without time-of-day or timezone.
// Business movements are recorded against a Day, never an instant.
//
// Day is comparable and can be used as a map key. Ordering is numeric,
// not string-based, so malformed input cannot silently corrupt sorting.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

const dayLayout = "2006-01-02"

// ParseDay parses an ISO YYYY-MM-DD string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// MustParseDay parses an ISO date string, panics on error.
// Use only for constants and tests.
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DayOf truncates a time.Time to its civil date (in the time's location).
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Date: d}
}

// NewDay constructs a Day from components. Out-of-range components are
// normalized the way time.Date normalizes them.
func NewDay(year int, month time.Month, date int) Day {
	return DayOf(time.Date(year, month, date, 0, 0, 0, 0, time.UTC))
}

// Time returns the midnight UTC instant of the day.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, time.UTC)
}

// String formats the day as ISO YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Date)
}

// IsZero reports whether the day is the zero value.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Before reports whether d is chronologically before other.
func (d Day) Before(other Day) bool {
	return d.Compare(other) < 0
}

// After reports whether d is chronologically after other.
func (d Day) After(other Day) bool {
	return d.Compare(other) > 0
}

// Compare returns -1, 0 or +1 depending on chronological order.
func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Date, other.Date)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MarshalJSON encodes the day as a JSON string "YYYY-MM-DD".
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a JSON string "YYYY-MM-DD".
func (d *Day) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("day must be a JSON string, got %s", string(data))
	}
	parsed, err := ParseDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInMonth returns the number of days in the given month, leap-year aware.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
