package availability

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindOverlapping возвращает не отмененные бронирования квартиры, пересекающие диапазон.
	// excludeID исключает бронирование из выборки (при редактировании).
	FindOverlapping(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64) ([]*domain.Booking, error)
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
