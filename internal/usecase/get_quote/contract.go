package get_quote

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/service/pricing"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flat, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error)
}

// AvailabilityChecker проверка свободных дат
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64, ignoreClosures bool) (bool, error)
}

// PricingEngine расчет цены проживания
type PricingEngine interface {
	Quote(ctx context.Context, flatID int64, rng domain.DateRange) (*pricing.Quote, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
