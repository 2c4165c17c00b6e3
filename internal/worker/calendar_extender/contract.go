package calendar_extender

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

type FlatRepository interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

type CalendarRepository interface {
	Seed(ctx context.Context, flatID int64, rng domain.DateRange, defaults domain.CalendarDefaults) (int64, error)
}

type Metrics interface {
	ObserveDaysSeeded(trigger string, n int64)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
