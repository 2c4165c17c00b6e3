package delete_flat

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
	service FlatService
	logger  Logger
}

func NewHandler(service FlatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/flats/{flatId}
// Календарь, скидки и бронирования квартиры удаляются вместе с ней
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flatID, err := strconv.ParseInt(mux.Vars(r)["flatId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /flats/{id} - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	if err := h.service.Delete(r.Context(), flatID, landlordID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgFlatNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("DELETE /flats/{id} - Access denied: flat_id=%d, landlord_id=%d", flatID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /flats/{id} - Failed to delete flat: flat_id=%d, error=%v", flatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /flats/{id} - Flat deleted: flat_id=%d, landlord_id=%d", flatID, landlordID)
	handlers.RespondNoContent(w)
}
