package get_calendar

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
	msgInvalidFlatID     = "некорректный ID квартиры"
	msgMissingLandlordID = "отсутствует ID арендодателя"
	msgInvalidDate       = "параметры from и to обязательны в формате YYYY-MM-DD"
	msgInvalidRange      = "некорректный диапазон дат"
	msgFlatNotFound      = "квартира не найдена"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/flats/{flatId}/calendar
// Query params: from, to (включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flatID, err := strconv.ParseInt(mux.Vars(r)["flatId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /flats/{id}/calendar - Invalid flat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("GET /flats/{id}/calendar - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	from, err := domain.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := domain.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	days, err := h.service.GetRange(r.Context(), landlordID, flatID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgFlatNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("GET /flats/{id}/calendar - Access denied: flat_id=%d, landlord_id=%d", flatID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /flats/{id}/calendar - Failed to get calendar: flat_id=%d, error=%v", flatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /flats/{id}/calendar - Calendar retrieved: flat_id=%d, days=%d", flatID, len(days))
	handlers.RespondJSON(w, http.StatusOK, FromDomainDays(flatID, days))
}
