package calendar

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flat, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
