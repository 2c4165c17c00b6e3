package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Checker проверяет, можно ли забронировать диапазон дат квартиры
type Checker struct {
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	logger       Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	logger Logger,
) *Checker {
	return &Checker{
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// IsAvailable возвращает true, если диапазон свободен.
// ignoreClosures используется только при массовом редактировании календаря,
// чтобы можно было закрыть дни, которые сами входят в редактирование.
func (c *Checker) IsAvailable(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64, ignoreClosures bool) (bool, error) {
	err := c.Check(ctx, flatID, rng, excludeID, ignoreClosures)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrDateConflict) {
		return false, nil
	}
	return false, err
}

// Check то же, что IsAvailable, но возвращает domain.ErrDateConflict с причиной
func (c *Checker) Check(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64, ignoreClosures bool) error {
	if err := rng.Validate(); err != nil {
		return err
	}

	bookings, err := c.bookingRepo.FindOverlapping(ctx, flatID, rng, excludeID)
	if err != nil {
		c.logger.Error("CheckAvailability: failed to find bookings for flat=%d %s: %v", flatID, rng, err)
		return fmt.Errorf("%w: find overlapping bookings: %v", ErrInternal, err)
	}

	if conflict := NewTimeline(bookings, excludeID).FirstConflict(rng); conflict != nil {
		c.logger.Info("CheckAvailability: flat=%d %s conflicts with booking id=%d %s",
			flatID, rng, conflict.ID, conflict.Range())
		return fmt.Errorf("%w: booking %d occupies %s", domain.ErrDateConflict, conflict.ID, conflict.Range())
	}

	if ignoreClosures {
		return nil
	}

	days, err := c.calendarRepo.GetRange(ctx, flatID, rng)
	if err != nil {
		c.logger.Error("CheckAvailability: failed to get calendar for flat=%d %s: %v", flatID, rng, err)
		return fmt.Errorf("%w: get calendar: %v", ErrInternal, err)
	}

	if closed := ClosedDays(days, rng); len(closed) > 0 {
		c.logger.Info("CheckAvailability: flat=%d %s has %d closed days", flatID, rng, len(closed))
		return fmt.Errorf("%w: day %s is closed", domain.ErrDateConflict, closed[0].Format(domain.DateFormat))
	}

	return nil
}
