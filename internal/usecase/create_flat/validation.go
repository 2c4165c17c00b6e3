package create_flat

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

	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxFlatNameLength {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxFlatNameLength)
	}

	address := strings.TrimSpace(req.Address)
	if address == "" || utf8.RuneCountInString(address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address must be 1..%d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}
