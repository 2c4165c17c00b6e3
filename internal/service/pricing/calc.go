package pricing

import (
	"math"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// SumBasePrice суммирует базовые цены дней диапазона.
// Дни, которых нет в календаре, считаются бесплатными.
func SumBasePrice(days []*domain.CalendarDay, rng domain.DateRange) int64 {
	var total int64
	for _, d := range days {
		if rng.Contains(d.Date) {
			total += d.BasePrice
		}
	}
	return total
}

// SelectDiscount выбирает скидку уровня с наибольшим порогом, не превышающим nights.
// Пороги уникальны, поэтому выбор однозначен.
func SelectDiscount(tiers []*domain.DiscountTier, nights int) int {
	bestThreshold := 0
	percent := 0
	for _, t := range tiers {
		if t.NightsThreshold <= nights && t.NightsThreshold > bestThreshold {
			bestThreshold = t.NightsThreshold
			percent = t.DiscountPercent
		}
	}
	return percent
}

// ApplyDiscount возвращает цену со скидкой, дробная часть отбрасывается
func ApplyDiscount(base int64, percent int) int64 {
	return base * int64(100-percent) / 100
}

// RealizedDiscount восстанавливает фактическую скидку по сохраненной цене
func RealizedDiscount(base, price int64) int {
	if base == 0 {
		return 0
	}
	return RoundPercent(base-price, base)
}

// RoundPercent округляет 100*part/whole до целого, половины к четному (12.5 -> 12, 13.5 -> 14).
// whole должен быть больше нуля.
func RoundPercent(part, whole int64) int {
	return int(math.RoundToEven(100 * float64(part) / float64(whole)))
}
