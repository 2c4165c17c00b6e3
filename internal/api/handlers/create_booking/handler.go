package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FlatrentService/internal/api/handlers"
	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingLandlordID  = "отсутствует ID арендодателя"
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgInvalidPrice       = "цена не может быть отрицательной"
	msgInvalidInput       = "некорректные данные бронирования"
	msgBelowMinimumStay   = "срок проживания меньше минимального для даты заезда"
	msgDatesUnavailable   = "выбранные даты заняты или закрыты"
	msgFlatNotFound       = "квартира не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(landlordID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, domain.ErrInvalidPrice):
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, domain.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, domain.ErrBelowMinimumStay):
			h.logger.Warn("POST /bookings - Below minimum stay: flat_id=%d, %v", req.FlatID, err)
			handlers.RespondConflict(w, msgBelowMinimumStay)

		case errors.Is(err, domain.ErrDateConflict):
			h.logger.Warn("POST /bookings - Dates unavailable: flat_id=%d, %v", req.FlatID, err)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /bookings - Flat not found: flat_id=%d", req.FlatID)
			handlers.RespondNotFound(w, msgFlatNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Access denied: flat_id=%d, landlord_id=%d", req.FlatID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: flat_id=%d, landlord_id=%d, error=%v",
				req.FlatID, landlordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, flat_id=%d",
		result.ID, result.FlatID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
