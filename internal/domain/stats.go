package domain

import "time"

// MonthlyStats holds the KPIs of one calendar month of a flat
type MonthlyStats struct {
	Month            time.Month
	Days             int // calendar rows in the month
	OccupiedDays     int
	OccupancyPercent int
	Income           int64
	AvgDailyPrice    int64
	BookingCount     int
	AvgStayLength    float64

	// Elapsed marks months that started on or before today (past and current).
	// Used for presentation only.
	Elapsed bool
}

// YearStats aggregates a flat's year month by month
type YearStats struct {
	FlatID int64
	Year   int
	Months [12]MonthlyStats

	// Sources counts non-cancelled bookings per advertising channel
	Sources map[string]int

	TotalIncome       int64
	TotalOccupiedDays int
	TotalBookings     int
}
