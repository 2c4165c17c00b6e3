package get_flat_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FlatrentService/internal/api/handlers"
	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

const (
	msgInvalidFlatID     = "некорректный ID квартиры"
	msgMissingLandlordID = "отсутствует ID арендодателя"
	msgInvalidParams     = "некорректные параметры запроса"
	msgFlatNotFound      = "квартира не найдена"
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

// Handle GET /api/v1/flats/{flatId}/bookings
// Query params: year (по умолчанию текущий), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flatID, err := strconv.ParseInt(mux.Vars(r)["flatId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /flats/{id}/bookings - Invalid flat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("GET /flats/{id}/bookings - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(flatID, landlordID, query.Get("year"), query.Get("status"), time.Now().Year())
	if err != nil {
		h.logger.Warn("GET /flats/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByFlatAndYear(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgFlatNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("GET /flats/{id}/bookings - Access denied: flat_id=%d, landlord_id=%d",
				flatID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /flats/{id}/bookings - Failed to get bookings: flat_id=%d, error=%v",
				flatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /flats/{id}/bookings - Bookings retrieved successfully: flat_id=%d, year=%d, count=%d",
		flatID, serviceReq.Year, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
