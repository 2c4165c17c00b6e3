package update_calendar

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
	msgInvalidFlatID      = "некорректный ID квартиры"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingLandlordID  = "отсутствует ID арендодателя"
	msgInvalidRange       = "некорректный диапазон дат"
	msgInvalidInput       = "некорректные параметры дней календаря"
	msgDaysBooked         = "нельзя закрыть дни, занятые бронированием"
	msgFlatNotFound       = "квартира не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase UpdateCalendarUseCase
	logger  Logger
}

func NewHandler(useCase UpdateCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/flats/{flatId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flatID, err := strconv.ParseInt(mux.Vars(r)["flatId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /flats/{id}/calendar - Invalid flat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("PUT /flats/{id}/calendar - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	var req UpdateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flats/{id}/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(landlordID, flatID)
	if err != nil {
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

		case errors.Is(err, domain.ErrDateConflict):
			h.logger.Warn("PUT /flats/{id}/calendar - Days are booked: flat_id=%d, %v", flatID, err)
			handlers.RespondConflict(w, msgDaysBooked)

		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgFlatNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("PUT /flats/{id}/calendar - Access denied: flat_id=%d, landlord_id=%d", flatID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /flats/{id}/calendar - Failed to update calendar: flat_id=%d, error=%v", flatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /flats/{id}/calendar - Calendar updated: flat_id=%d, updated=%d", flatID, result.Updated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
