package discounts

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flat, error)
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
