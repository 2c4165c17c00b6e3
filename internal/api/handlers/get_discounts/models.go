package get_discounts

import "github.com/m04kA/SMC-FlatrentService/internal/domain"

// TierResponse уровень скидки
type TierResponse struct {
	NightsThreshold int `json:"nightsThreshold"`
	DiscountPercent int `json:"discountPercent"`
}

// DiscountsResponse HTTP response model
type DiscountsResponse struct {
	FlatID int64          `json:"flatId"`
	Tiers  []TierResponse `json:"tiers"`
}

// FromDomainTiers конвертирует уровни скидок в HTTP response
func FromDomainTiers(flatID int64, tiers []*domain.DiscountTier) *DiscountsResponse {
	resp := &DiscountsResponse{FlatID: flatID, Tiers: make([]TierResponse, 0, len(tiers))}
	for _, t := range tiers {
		resp.Tiers = append(resp.Tiers, TierResponse{
			NightsThreshold: t.NightsThreshold,
			DiscountPercent: t.DiscountPercent,
		})
	}
	return resp
}
