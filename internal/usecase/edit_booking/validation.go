package edit_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// и возвращает запрошенный статус, если он указан
func validateRequest(req *Request) (*domain.BookingStatus, error) {
	if req.LandlordID <= 0 {
		return nil, fmt.Errorf("%w: landlordID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TenantPhone) == "" {
		return nil, fmt.Errorf("%w: tenant phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TenantName) == "" {
		return nil, fmt.Errorf("%w: tenant name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Source) > domain.MaxSourceLength {
		return nil, fmt.Errorf("%w: source exceeds %d characters", ErrInvalidInput, domain.MaxSourceLength)
	}

	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price %d is negative", domain.ErrInvalidPrice, *req.Price)
	}

	if req.Status == nil {
		return nil, nil
	}

	status, ok := domain.ParseBookingStatus(*req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	return &status, nil
}

// validateCancelRequest валидирует запрос на отмену
func validateCancelRequest(req *CancelRequest) error {
	if req.LandlordID <= 0 {
		return fmt.Errorf("%w: landlordID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	return nil
}
