package get_flat_bookings

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/service/bookings/models"
)

type BookingService interface {
	ListByFlatAndYear(ctx context.Context, req *models.ListFlatBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
