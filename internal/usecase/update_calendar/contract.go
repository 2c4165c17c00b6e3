package update_calendar

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	LockForUpdate(ctx context.Context, id int64) (*domain.Flat, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error)
	BulkSetOpen(ctx context.Context, flatID int64, rng domain.DateRange, isOpen bool) (int64, error)
	BulkSetPriceAndMinNights(ctx context.Context, flatID int64, rng domain.DateRange, basePrice *int64, minNights *int) (int64, error)
}

// AvailabilityChecker проверка свободных дат
type AvailabilityChecker interface {
	Check(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64, ignoreClosures bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
