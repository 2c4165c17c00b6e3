package flats

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flat, error)
	LockForUpdate(ctx context.Context, id int64) (*domain.Flat, error)
	Delete(ctx context.Context, id int64) error
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
