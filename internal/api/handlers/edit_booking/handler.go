package edit_booking

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
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingLandlordID  = "отсутствует ID арендодателя"
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgInvalidInput       = "некорректные данные бронирования"
	msgBelowMinimumStay   = "срок проживания меньше минимального для даты заезда"
	msgDatesUnavailable   = "выбранные даты заняты или закрыты"
	msgStatusTransition   = "переход в запрошенный статус невозможен"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase EditBookingUseCase
	logger  Logger
}

func NewHandler(useCase EditBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(landlordID, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPrice):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, domain.ErrBelowMinimumStay):
			h.logger.Warn("PUT /bookings/{id} - Below minimum stay: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgBelowMinimumStay)

		case errors.Is(err, domain.ErrDateConflict):
			h.logger.Warn("PUT /bookings/{id} - Dates unavailable: booking_id=%d, %v", bookingID, err)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, domain.ErrStatusTransition):
			h.logger.Warn("PUT /bookings/{id} - Status transition rejected: booking_id=%d, %v", bookingID, err)
			handlers.RespondConflict(w, msgStatusTransition)

		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, landlord_id=%d", bookingID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to edit booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
