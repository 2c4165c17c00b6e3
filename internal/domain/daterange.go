package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// DateRange is a half-open interval of calendar days [Start, End).
// Both bounds are normalized to UTC midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a validated range; End must be strictly after Start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: DateOnly(start), End: DateOnly(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// MustDateRange is NewDateRange for literals known to be valid
func MustDateRange(start, end time.Time) DateRange {
	r, err := NewDateRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks the range is non-degenerate
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidRange)
	}
	if !r.End.After(r.Start) {
		return fmt.Errorf("%w: %s..%s", ErrInvalidRange, r.Start.Format(DateFormat), r.End.Format(DateFormat))
	}
	return nil
}

// Nights returns the number of days in the range
func (r DateRange) Nights() int {
	return DaysBetween(r.Start, r.End)
}

// Contains reports whether date falls in [Start, End)
func (r DateRange) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(r.Start) && d.Before(r.End)
}

// Overlaps reports whether two half-open ranges share at least one day
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Days lists every date of the range in order
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.Nights())
	for d := r.Start; d.Before(r.End); d = d.Add(day) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}

// DateOnly drops the clock part and moves the date to UTC midnight
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole days from a to b (negative when b is earlier)
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)) / day)
}

// AddDays shifts a date by n calendar days
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// ParseDate parses a YYYY-MM-DD string into a UTC date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}
