package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// AllStatuses lists every valid booking status
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ParseBookingStatus validates a status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, st := range AllStatuses {
		if BookingStatus(s) == st {
			return st, true
		}
	}
	return "", false
}

// Booking represents a stay of a tenant in a flat
type Booking struct {
	ID           int64
	FlatID       int64
	Source       string // рекламная площадка, с которой пришло бронирование
	Status       BookingStatus
	CheckinDate  time.Time
	CheckoutDate time.Time

	// Price is the amount actually charged. It is stored, not derived,
	// so the gap to the recomputed base price is the realized discount.
	Price   int64
	Comment *string

	TenantPhone string

	BookedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the booked half-open date range
func (b *Booking) Range() DateRange {
	return DateRange{Start: DateOnly(b.CheckinDate), End: DateOnly(b.CheckoutDate)}
}

// Nights returns the length of the stay
func (b *Booking) Nights() int {
	return DaysBetween(b.CheckinDate, b.CheckoutDate)
}

// IsActive returns true if the booking occupies its dates
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Clone returns a deep copy of the booking
func (b *Booking) Clone() *Booking {
	c := *b
	if b.Comment != nil {
		comment := *b.Comment
		c.Comment = &comment
	}
	return &c
}
