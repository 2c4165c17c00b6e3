package set_discounts

import "github.com/m04kA/SMC-FlatrentService/internal/domain"

// Tier уровень скидки в запросе
type Tier struct {
	NightsThreshold int
	DiscountPercent int
}

// Request модель запроса: полный новый набор уровней скидок квартиры.
// Пустой набор удаляет все скидки.
type Request struct {
	LandlordID int64
	FlatID     int64
	Tiers      []Tier
}

// Response модель ответа: сохраненные уровни по возрастанию порога
type Response struct {
	FlatID int64
	Tiers  []*domain.DiscountTier
}
