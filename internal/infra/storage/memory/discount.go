package memory

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	discountRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/discount"
)

// DiscountRepository уровни скидок в памяти
type DiscountRepository struct {
	store *Store
}

// NewDiscountRepository создает репозиторий скидок
func NewDiscountRepository(store *Store) *DiscountRepository {
	return &DiscountRepository{store: store}
}

func (r *DiscountRepository) ListTiers(ctx context.Context, flatID int64) ([]*domain.DiscountTier, error) {
	defer r.store.lock(ctx)()

	tiers := cloneTiers(r.store.st.discounts[flatID])
	domain.SortTiers(tiers)
	return tiers, nil
}

// ReplaceTiers повторяет уникальные индексы таблицы discount_tiers
func (r *DiscountRepository) ReplaceTiers(ctx context.Context, flatID int64, tiers []*domain.DiscountTier) ([]*domain.DiscountTier, error) {
	defer r.store.lock(ctx)()
	st := r.store.st

	thresholds := make(map[int]bool, len(tiers))
	percents := make(map[int]bool, len(tiers))
	saved := make([]*domain.DiscountTier, 0, len(tiers))

	for _, t := range tiers {
		if thresholds[t.NightsThreshold] || percents[t.DiscountPercent] {
			return nil, discountRepo.ErrDuplicateTier
		}
		thresholds[t.NightsThreshold] = true
		percents[t.DiscountPercent] = true

		st.nextTierID++
		saved = append(saved, &domain.DiscountTier{
			ID:              st.nextTierID,
			FlatID:          flatID,
			NightsThreshold: t.NightsThreshold,
			DiscountPercent: t.DiscountPercent,
		})
	}

	domain.SortTiers(saved)
	st.discounts[flatID] = cloneTiers(saved)
	return saved, nil
}
