package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Service сервис просмотра календаря квартиры
type Service struct {
	flatRepo     FlatRepository
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(flatRepo FlatRepository, calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		flatRepo:     flatRepo,
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// GetRange возвращает дни календаря с from по to включительно, по возрастанию даты.
// Дни вне созданного окна календаря в ответ не попадают.
func (s *Service) GetRange(ctx context.Context, landlordID, flatID int64, from, to time.Time) ([]*domain.CalendarDay, error) {
	rng, err := domain.NewDateRange(from, domain.AddDays(to, 1))
	if err != nil {
		return nil, err
	}
	if rng.Nights() > domain.MaxCalendarEditDays {
		return nil, fmt.Errorf("%w: %d days exceed limit of %d", domain.ErrInvalidRange, rng.Nights(), domain.MaxCalendarEditDays)
	}

	flat, err := s.flatRepo.GetByID(ctx, flatID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrFlatNotFound
		}
		s.logger.Error("GetCalendar: failed to get flat id=%d: %v", flatID, err)
		return nil, fmt.Errorf("%w: failed to get flat: %v", ErrInternal, err)
	}

	if !flat.IsOwnedBy(landlordID) {
		s.logger.Warn("GetCalendar: flat id=%d does not belong to landlord=%d", flatID, landlordID)
		return nil, ErrAccessDenied
	}

	days, err := s.calendarRepo.GetRange(ctx, flatID, rng)
	if err != nil {
		s.logger.Error("GetCalendar: failed to get days of flat id=%d %s: %v", flatID, rng, err)
		return nil, fmt.Errorf("%w: failed to get days: %v", ErrInternal, err)
	}

	return days, nil
}
