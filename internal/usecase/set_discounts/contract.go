package set_discounts

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	LockForUpdate(ctx context.Context, id int64) (*domain.Flat, error)
}

// DiscountRepository интерфейс репозитория скидок
type DiscountRepository interface {
	ReplaceTiers(ctx context.Context, flatID int64, tiers []*domain.DiscountTier) ([]*domain.DiscountTier, error)
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
