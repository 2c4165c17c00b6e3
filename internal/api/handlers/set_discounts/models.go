package set_discounts

import (
	setDiscounts "github.com/m04kA/SMC-FlatrentService/internal/usecase/set_discounts"
)

// TierRequest уровень скидки. Границы и уникальность проверяет use case.
type TierRequest struct {
	NightsThreshold int `json:"nightsThreshold"`
	DiscountPercent int `json:"discountPercent"`
}

// SetDiscountsRequest HTTP request model: полный набор уровней, пустой список удаляет скидки
type SetDiscountsRequest struct {
	Tiers []TierRequest `json:"tiers" validate:"dive"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetDiscountsRequest) ToUseCaseRequest(landlordID, flatID int64) *setDiscounts.Request {
	tiers := make([]setDiscounts.Tier, 0, len(r.Tiers))
	for _, t := range r.Tiers {
		tiers = append(tiers, setDiscounts.Tier{
			NightsThreshold: t.NightsThreshold,
			DiscountPercent: t.DiscountPercent,
		})
	}

	return &setDiscounts.Request{
		LandlordID: landlordID,
		FlatID:     flatID,
		Tiers:      tiers,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setDiscounts.Response) *DiscountsResponse {
	out := &DiscountsResponse{FlatID: resp.FlatID, Tiers: make([]TierResponse, 0, len(resp.Tiers))}
	for _, t := range resp.Tiers {
		out.Tiers = append(out.Tiers, TierResponse{
			NightsThreshold: t.NightsThreshold,
			DiscountPercent: t.DiscountPercent,
		})
	}
	return out
}
