package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/service/pricing"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	LockForUpdate(ctx context.Context, id int64) (*domain.Flat, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityChecker проверка свободных дат
type AvailabilityChecker interface {
	Check(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64, ignoreClosures bool) error
}

// PricingEngine расчет цены проживания
type PricingEngine interface {
	Quote(ctx context.Context, flatID int64, rng domain.DateRange) (*pricing.Quote, error)
}

// TenantRegistrar создание или переименование гостя по телефону
type TenantRegistrar interface {
	Register(ctx context.Context, phone, name string) (*domain.Tenant, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	ObserveBookingWritten(operation, status string)
	ObserveBookingConflict(reason string)
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
