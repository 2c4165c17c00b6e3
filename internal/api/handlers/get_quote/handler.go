package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FlatrentService/internal/api/handlers"
	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	getQuote "github.com/m04kA/SMC-FlatrentService/internal/usecase/get_quote"
)

const (
	msgInvalidFlatID     = "некорректный ID квартиры"
	msgMissingLandlordID = "отсутствует ID арендодателя"
	msgInvalidDate       = "параметры checkin и checkout обязательны в формате YYYY-MM-DD"
	msgInvalidRange      = "дата выезда должна быть позже даты заезда"
	msgFlatNotFound      = "квартира не найдена"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/flats/{flatId}/quote
// Query params: checkin, checkout (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flatID, err := strconv.ParseInt(mux.Vars(r)["flatId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /flats/{id}/quote - Invalid flat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("GET /flats/{id}/quote - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	checkin, err := domain.ParseDate(r.URL.Query().Get("checkin"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	checkout, err := domain.ParseDate(r.URL.Query().Get("checkout"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getQuote.Request{
		LandlordID:   landlordID,
		FlatID:       flatID,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, domain.ErrNotFound):
			handlers.RespondNotFound(w, msgFlatNotFound)

		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("GET /flats/{id}/quote - Access denied: flat_id=%d, landlord_id=%d", flatID, landlordID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /flats/{id}/quote - Failed to quote: flat_id=%d, error=%v", flatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
