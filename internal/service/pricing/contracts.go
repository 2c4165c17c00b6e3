package pricing

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error)
}

// DiscountRepository интерфейс репозитория скидок
type DiscountRepository interface {
	ListTiers(ctx context.Context, flatID int64) ([]*domain.DiscountTier, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
