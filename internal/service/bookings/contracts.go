package bookings

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByFlatAndYear(ctx context.Context, flatID int64, year int) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flat, error)
	LockForUpdate(ctx context.Context, id int64) (*domain.Flat, error)
}

// TenantRepository интерфейс репозитория гостей
type TenantRepository interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Tenant, error)
}

// PricingEngine фактическая скидка бронирования
type PricingEngine interface {
	RealizedDiscountPercent(ctx context.Context, booking *domain.Booking) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
