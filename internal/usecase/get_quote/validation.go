package get_quote

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LandlordID <= 0 {
		return fmt.Errorf("%w: landlordID must be positive", ErrInvalidInput)
	}

	if req.FlatID <= 0 {
		return fmt.Errorf("%w: flatID must be positive", ErrInvalidInput)
	}

	return nil
}
