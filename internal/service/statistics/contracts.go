package statistics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flat, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListByFlatAndYear возвращает бронирования (включая отмененные),
	// у которых заезд или выезд приходится на год
	ListByFlatAndYear(ctx context.Context, flatID int64, year int) ([]*domain.Booking, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
