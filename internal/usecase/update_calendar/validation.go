package update_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/pkg/ptr"
)

// validateRequest валидирует запрос и возвращает полуинтервал [From, To+1)
func validateRequest(req *Request) (domain.DateRange, error) {
	if req.LandlordID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: landlordID must be positive", ErrInvalidInput)
	}

	if req.FlatID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: flatID must be positive", ErrInvalidInput)
	}

	if req.IsOpen == nil && req.BasePrice == nil && req.MinNights == nil {
		return domain.DateRange{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return domain.DateRange{}, fmt.Errorf("%w: both dates are required", domain.ErrInvalidRange)
	}

	rng, err := domain.NewDateRange(req.From, domain.AddDays(req.To, 1))
	if err != nil {
		return domain.DateRange{}, err
	}

	if rng.Nights() > domain.MaxCalendarEditDays {
		return domain.DateRange{}, fmt.Errorf("%w: %d days exceed limit of %d",
			domain.ErrInvalidRange, rng.Nights(), domain.MaxCalendarEditDays)
	}

	if err := domain.ValidateDayValues(ptr.Value(req.BasePrice), ptr.Value(req.MinNights)); err != nil {
		return domain.DateRange{}, err
	}

	return rng, nil
}
