package create_flat

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FlatrentService/internal/api/handlers"
	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingLandlordID  = "отсутствует ID арендодателя"
	msgInvalidInput       = "некорректные данные квартиры"
)

type Handler struct {
	useCase CreateFlatUseCase
	logger  Logger
}

func NewHandler(useCase CreateFlatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flats
// Вместе с квартирой создается календарь на окно по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := middleware.GetLandlordID(r.Context())
	if !ok {
		h.logger.Warn("POST /flats - Missing landlord ID")
		handlers.RespondUnauthorized(w, msgMissingLandlordID)
		return
	}

	var req CreateFlatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flats - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(landlordID))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /flats - Failed to create flat: landlord_id=%d, error=%v", landlordID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /flats - Flat created: flat_id=%d, landlord_id=%d, days_seeded=%d",
		result.ID, landlordID, result.DaysSeeded)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
