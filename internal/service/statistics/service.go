package statistics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Service сервис годовой статистики квартиры
type Service struct {
	flatRepo     FlatRepository
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	flatRepo FlatRepository,
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	logger Logger,
) *Service {
	return &Service{
		flatRepo:     flatRepo,
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetYearStats статистика за год для владельца квартиры
func (s *Service) GetYearStats(ctx context.Context, landlordID, flatID int64, year int) (*domain.YearStats, error) {
	s.logger.Info("GetYearStats: landlord=%d, flat=%d, year=%d", landlordID, flatID, year)

	if year < 1970 || year > 9999 {
		s.logger.Warn("GetYearStats: invalid year=%d", year)
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	flat, err := s.flatRepo.GetByID(ctx, flatID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("GetYearStats: flat id=%d not found", flatID)
			return nil, ErrFlatNotFound
		}
		s.logger.Error("GetYearStats: failed to get flat id=%d: %v", flatID, err)
		return nil, fmt.Errorf("%w: get flat: %v", ErrInternal, err)
	}

	if !flat.IsOwnedBy(landlordID) {
		s.logger.Warn("GetYearStats: flat id=%d does not belong to landlord=%d", flatID, landlordID)
		return nil, ErrAccessDenied
	}

	return s.YearStats(ctx, flatID, year, s.timeProvider.Now())
}

// YearStats собирает помесячную статистику квартиры за год.
// today определяет, какие месяцы помечены как прошедшие.
func (s *Service) YearStats(ctx context.Context, flatID int64, year int, today time.Time) (*domain.YearStats, error) {
	bookings, err := s.bookingRepo.ListByFlatAndYear(ctx, flatID, year)
	if err != nil {
		s.logger.Error("YearStats: failed to list bookings for flat=%d year=%d: %v", flatID, year, err)
		return nil, fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
	}

	days, err := s.calendarRepo.GetRange(ctx, flatID, CalendarSpan(year, bookings))
	if err != nil {
		s.logger.Error("YearStats: failed to get calendar for flat=%d year=%d: %v", flatID, year, err)
		return nil, fmt.Errorf("%w: get calendar: %v", ErrInternal, err)
	}

	stats := Aggregate(flatID, year, today, days, bookings)

	s.logger.Info("YearStats: flat=%d year=%d bookings=%d income=%d", flatID, year, stats.TotalBookings, stats.TotalIncome)
	return stats, nil
}
