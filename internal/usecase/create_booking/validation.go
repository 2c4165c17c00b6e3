package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LandlordID <= 0 {
		return fmt.Errorf("%w: landlordID must be positive", ErrInvalidInput)
	}

	if req.FlatID <= 0 {
		return fmt.Errorf("%w: flatID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TenantPhone) == "" {
		return fmt.Errorf("%w: tenant phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TenantName) == "" {
		return fmt.Errorf("%w: tenant name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Source) > domain.MaxSourceLength {
		return fmt.Errorf("%w: source exceeds %d characters", ErrInvalidInput, domain.MaxSourceLength)
	}

	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price %d is negative", domain.ErrInvalidPrice, *req.Price)
	}

	return nil
}
