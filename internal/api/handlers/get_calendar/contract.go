package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

type CalendarService interface {
	GetRange(ctx context.Context, landlordID, flatID int64, from, to time.Time) ([]*domain.CalendarDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
