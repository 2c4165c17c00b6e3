package set_discounts

import (
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// validateRequest валидирует запрос и переводит уровни в доменные
func validateRequest(req *Request) ([]*domain.DiscountTier, error) {
	if req.LandlordID <= 0 {
		return nil, fmt.Errorf("%w: landlordID must be positive", ErrInvalidInput)
	}

	if req.FlatID <= 0 {
		return nil, fmt.Errorf("%w: flatID must be positive", ErrInvalidInput)
	}

	tiers := make([]*domain.DiscountTier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		tiers = append(tiers, &domain.DiscountTier{
			FlatID:          req.FlatID,
			NightsThreshold: t.NightsThreshold,
			DiscountPercent: t.DiscountPercent,
		})
	}

	if err := domain.ValidateDiscountTiers(tiers); err != nil {
		return nil, err
	}

	return tiers, nil
}
