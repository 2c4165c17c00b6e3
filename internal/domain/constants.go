package domain

// Discount tier bounds
const (
	MinDiscountPercent = 1
	MaxDiscountPercent = 99
	MinNightsThreshold = 1
	MaxNightsThreshold = 254
)

// Calendar window created together with a flat
const (
	DefaultCalendarMonthsBack  = 1
	DefaultCalendarDaysForward = 365
	DefaultBasePrice           = 0
	DefaultMinNights           = 0
)

// Business validation constants
const (
	MaxCommentLength    = 300
	MaxTenantNameLength = 30
	MaxPhoneLength      = 20
	MaxSourceLength     = 45
	MaxFlatNameLength   = 45
	MaxAddressLength    = 100
	MaxCalendarEditDays = 730 // 2 years
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses bookings in these statuses never occupy calendar days
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses bookings in these statuses occupy calendar days
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
}
