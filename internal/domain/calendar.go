package domain

import (
	"fmt"
	"time"
)

// CalendarDay is the per-(flat, date) pricing and opening record
type CalendarDay struct {
	FlatID    int64
	Date      time.Time
	BasePrice int64
	MinNights int
	IsOpen    bool
}

// CalendarDefaults are applied to days created by seeding
type CalendarDefaults struct {
	BasePrice int64
	MinNights int
}

// Validate checks the defaults can be written to the calendar
func (d CalendarDefaults) Validate() error {
	return ValidateDayValues(d.BasePrice, d.MinNights)
}

// ValidateDayValues checks price and minimum stay of a calendar day
func ValidateDayValues(basePrice int64, minNights int) error {
	if basePrice < 0 {
		return fmt.Errorf("%w: base price %d is negative", ErrInvalidPrice, basePrice)
	}
	if minNights < 0 {
		return fmt.Errorf("%w: min nights %d is negative", ErrInvalidInput, minNights)
	}
	return nil
}

// CheckMinimumStay rejects stays shorter than min_nights of the checkin day.
// A missing checkin day imposes no minimum.
func CheckMinimumStay(rng DateRange, checkinDay *CalendarDay) error {
	if checkinDay == nil {
		return nil
	}
	if rng.Nights() < checkinDay.MinNights {
		return fmt.Errorf("%w: %d nights booked, %s requires %d",
			ErrBelowMinimumStay, rng.Nights(), rng.Start.Format(DateFormat), checkinDay.MinNights)
	}
	return nil
}

// CalendarWindow returns the range seeded for a flat created on today:
// monthsBack months before today up to daysForward days after it.
func CalendarWindow(today time.Time, monthsBack, daysForward int) DateRange {
	t := DateOnly(today)
	return DateRange{
		Start: t.AddDate(0, -monthsBack, 0),
		End:   AddDays(t, daysForward+1),
	}
}

// DayIndex maps dates to calendar days for constant-time lookups
type DayIndex map[time.Time]*CalendarDay

// IndexDays builds a DayIndex keyed by normalized date
func IndexDays(days []*CalendarDay) DayIndex {
	idx := make(DayIndex, len(days))
	for _, d := range days {
		idx[DateOnly(d.Date)] = d
	}
	return idx
}

// Get returns the calendar day for the date or nil when the calendar has a gap
func (idx DayIndex) Get(date time.Time) *CalendarDay {
	return idx[DateOnly(date)]
}
