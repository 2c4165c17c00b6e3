package update_calendar

import (
	"context"

	updateCalendar "github.com/m04kA/SMC-FlatrentService/internal/usecase/update_calendar"
)

type UpdateCalendarUseCase interface {
	Execute(ctx context.Context, req *updateCalendar.Request) (*updateCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
