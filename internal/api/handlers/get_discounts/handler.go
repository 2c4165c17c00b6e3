package get_discounts

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
	msgFlatNotFound      = "квартира не найдена"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service DiscountService
	logger  Logger
}

func NewHandler(service DiscountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/flats/{flatId}/discounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flatID, err := strconv.ParseInt(mux.Vars(r)["flatId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("GET /flats/{id}/discounts - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	tiers, err := h.service.List(r.Context(), landlordID, flatID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgFlatNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("GET /flats/{id}/discounts - Access denied: flat_id=%d, landlord_id=%d", flatID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /flats/{id}/discounts - Failed to list discounts: flat_id=%d, error=%v", flatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainTiers(flatID, tiers))
}
