// Package timeutil provides the calendar date value shared by the store,
// the day navigator, and the views.
package timeutil

import (
	"fmt"
	"time"
)

const (
	layoutISO = "2006-01-02"
	// layoutLoose accepts dates without zero padding, e.g. 2024-1-2.
	layoutLoose = "2006-1-2"
)

// Date is a calendar date with no time-of-day or zone attached. The zero
// value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the current calendar date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO formatted date, accepting both 2024-01-02 and
// 2024-1-2 forms.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		t, err = time.Parse(layoutLoose, s)
		if err != nil {
			return Date{}, fmt.Errorf("timeutil: parse date %q: %w", s, err)
		}
	}
	return DateOf(t), nil
}

// Time returns the date at midnight local time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the date n days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Next returns the following calendar date.
func (d Date) Next() Date {
	return d.AddDays(1)
}

// Previous returns the preceding calendar date.
func (d Date) Previous() Date {
	return d.AddDays(-1)
}

// DaysSince returns the number of whole days from other to d. Negative when
// d is earlier than other. The delta is taken on UTC midnights so DST
// transitions in the local zone never shift the count.
func (d Date) DaysSince(other Date) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b) / (24 * time.Hour))
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format(layoutISO)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MarshalText lets Date be used directly as a JSON value or map key.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the ISO form written by MarshalText.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
