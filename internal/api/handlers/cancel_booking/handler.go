package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FlatrentService/internal/api/handlers"
	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	editBooking "github.com/m04kA/SMC-FlatrentService/internal/usecase/edit_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgMissingLandlordID = "отсутствует ID арендодателя"
	msgNotFound          = "бронирование не найдено"
	msgForbidden         = "доступ запрещен"
	msgCannotCancel      = "бронирование не может быть отменено"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	result, err := h.useCase.Cancel(r.Context(), &editBooking.CancelRequest{
		LandlordID: landlordID,
		BookingID:  bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, landlord_id=%d",
				bookingID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrStatusTransition):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, landlord_id=%d",
		bookingID, landlordID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
