package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FlatrentService/internal/api/handlers"
	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgMissingLandlordID = "отсутствует ID арендодателя"
	msgNotFound          = "бронирование не найдено"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Удаление освобождает даты так же, как отмена, но не оставляет записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID, landlordID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%d, landlord_id=%d", bookingID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: booking_id=%d, landlord_id=%d", bookingID, landlordID)
	handlers.RespondNoContent(w)
}
