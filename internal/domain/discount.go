package domain

import (
	"fmt"
	"sort"
)

// DiscountTier applies DiscountPercent to stays of at least NightsThreshold nights
type DiscountTier struct {
	ID              int64
	FlatID          int64
	NightsThreshold int
	DiscountPercent int
}

// ValidateDiscountTiers checks bounds and per-flat uniqueness of thresholds and percents.
// Pricing relies on these rules holding for every stored tier set.
func ValidateDiscountTiers(tiers []*DiscountTier) error {
	thresholds := make(map[int]struct{}, len(tiers))
	percents := make(map[int]struct{}, len(tiers))

	for _, t := range tiers {
		if t.NightsThreshold < MinNightsThreshold || t.NightsThreshold > MaxNightsThreshold {
			return fmt.Errorf("%w: nights threshold %d must be in [%d, %d]",
				ErrInvalidDiscountConfig, t.NightsThreshold, MinNightsThreshold, MaxNightsThreshold)
		}
		if t.DiscountPercent < MinDiscountPercent || t.DiscountPercent > MaxDiscountPercent {
			return fmt.Errorf("%w: discount %d%% must be in [%d, %d]",
				ErrInvalidDiscountConfig, t.DiscountPercent, MinDiscountPercent, MaxDiscountPercent)
		}
		if _, dup := thresholds[t.NightsThreshold]; dup {
			return fmt.Errorf("%w: duplicate nights threshold %d", ErrInvalidDiscountConfig, t.NightsThreshold)
		}
		if _, dup := percents[t.DiscountPercent]; dup {
			return fmt.Errorf("%w: duplicate discount %d%%", ErrInvalidDiscountConfig, t.DiscountPercent)
		}
		thresholds[t.NightsThreshold] = struct{}{}
		percents[t.DiscountPercent] = struct{}{}
	}

	return nil
}

// SortTiers orders tiers by ascending nights threshold
func SortTiers(tiers []*DiscountTier) {
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].NightsThreshold < tiers[j].NightsThreshold
	})
}
