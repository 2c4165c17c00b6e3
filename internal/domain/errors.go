package domain

import "errors"

// Error taxonomy shared by the engine, the use cases and the storage adapters.
// Callers wrap these with fmt.Errorf("%w: ...") and match with errors.Is.
var (
	// ErrInvalidRange checkout is not strictly after checkin
	ErrInvalidRange = errors.New("invalid date range: checkout must be after checkin")

	// ErrBelowMinimumStay the stay is shorter than min_nights of the checkin day
	ErrBelowMinimumStay = errors.New("stay is shorter than the minimum number of nights")

	// ErrDateConflict the range overlaps an active booking or a closed day
	ErrDateConflict = errors.New("dates are not available")

	// ErrInvalidDiscountConfig duplicate or out-of-bounds discount tiers
	ErrInvalidDiscountConfig = errors.New("invalid discount configuration")

	// ErrInvalidPrice negative price
	ErrInvalidPrice = errors.New("invalid price")

	// ErrNotFound flat, booking or tenant lookup miss
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized the flat belongs to another landlord
	ErrUnauthorized = errors.New("flat belongs to another landlord")

	// ErrStatusTransition requested status is not reachable from the current one
	ErrStatusTransition = errors.New("status transition is not allowed")

	// ErrInvalidInput malformed request fields
	ErrInvalidInput = errors.New("invalid input data")
)
