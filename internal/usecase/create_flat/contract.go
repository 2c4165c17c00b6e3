package create_flat

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// FlatRepository интерфейс репозитория квартир
type FlatRepository interface {
	Create(ctx context.Context, flat *domain.Flat) (*domain.Flat, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	Seed(ctx context.Context, flatID int64, rng domain.DateRange, defaults domain.CalendarDefaults) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики календаря
type Metrics interface {
	ObserveDaysSeeded(trigger string, n int64)
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
