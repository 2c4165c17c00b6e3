package cancel_booking

import (
	"context"

	editBooking "github.com/m04kA/SMC-FlatrentService/internal/usecase/edit_booking"
)

type CancelBookingUseCase interface {
	Cancel(ctx context.Context, req *editBooking.CancelRequest) (*editBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
