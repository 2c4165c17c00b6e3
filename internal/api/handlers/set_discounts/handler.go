package set_discounts

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
	msgMissingLandlordID  = "отсутствует ID арендодателя"
	msgInvalidDiscounts   = "некорректные уровни скидок: порог от 1 ночи, скидка от 1 до 99%, без повторов"
	msgFlatNotFound       = "квартира не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase SetDiscountsUseCase
	logger  Logger
}

func NewHandler(useCase SetDiscountsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/flats/{flatId}/discounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flatID, err := strconv.ParseInt(mux.Vars(r)["flatId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("PUT /flats/{id}/discounts - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	var req SetDiscountsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /flats/{id}/discounts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(landlordID, flatID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDiscountConfig), errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("PUT /flats/{id}/discounts - Invalid tiers: flat_id=%d, %v", flatID, err)
			handlers.RespondBadRequest(w, msgInvalidDiscounts)

		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgFlatNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("PUT /flats/{id}/discounts - Access denied: flat_id=%d, landlord_id=%d", flatID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /flats/{id}/discounts - Failed to set discounts: flat_id=%d, error=%v", flatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /flats/{id}/discounts - Discounts replaced: flat_id=%d, tiers=%d", flatID, len(result.Tiers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
