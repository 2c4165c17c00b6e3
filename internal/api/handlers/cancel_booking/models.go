package cancel_booking

import (
	"time"

	editBooking "github.com/m04kA/SMC-FlatrentService/internal/usecase/edit_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID        int64  `json:"id"`
	FlatID    int64  `json:"flatId"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:        resp.ID,
		FlatID:    resp.FlatID,
		Status:    resp.Status,
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
