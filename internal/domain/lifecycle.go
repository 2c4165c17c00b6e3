package domain

import (
	"fmt"
	"time"
)

// manualTransitions is the single source of truth for which status a landlord
// may request explicitly, keyed by the booking's current status.
var manualTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusPending, StatusCancelled},
	StatusInProgress: {StatusInProgress, StatusCancelled},
	StatusCompleted:  {StatusCompleted},
	StatusCancelled:  {StatusCancelled},
}

// CanRequestStatus reports whether a booking in status from may be explicitly set to to
func CanRequestStatus(from, to BookingStatus) bool {
	for _, allowed := range manualTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// StatusByDates derives the status of an active booking from its dates and today.
// The result is only written on create/edit; it is not re-evaluated passively.
func StatusByDates(checkin, checkout, today time.Time) BookingStatus {
	t := DateOnly(today)
	switch {
	case !DateOnly(checkout).After(t):
		return StatusCompleted
	case !DateOnly(checkin).After(t):
		return StatusInProgress
	default:
		return StatusPending
	}
}

// InitialStatus is the status assigned on creation; creation never yields Cancelled
func InitialStatus(checkin, checkout, today time.Time) BookingStatus {
	return StatusByDates(checkin, checkout, today)
}

// ResolveStatus computes the status written by an edit.
// requested is nil when the edit does not ask for a particular status.
// A cancelled booking stays cancelled and rejects any other request.
func ResolveStatus(current BookingStatus, requested *BookingStatus, checkin, checkout, today time.Time) (BookingStatus, error) {
	if requested != nil {
		if !CanRequestStatus(current, *requested) {
			return "", fmt.Errorf("%w: %s -> %s", ErrStatusTransition, current, *requested)
		}
		if *requested == StatusCancelled {
			return StatusCancelled, nil
		}
	}

	if current == StatusCancelled {
		return StatusCancelled, nil
	}

	return StatusByDates(checkin, checkout, today), nil
}
