package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	flatRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/flat"
)

// FlatRepository квартиры в памяти
type FlatRepository struct {
	store *Store
}

// NewFlatRepository создает репозиторий квартир
func NewFlatRepository(store *Store) *FlatRepository {
	return &FlatRepository{store: store}
}

func (r *FlatRepository) Create(ctx context.Context, flat *domain.Flat) (*domain.Flat, error) {
	defer r.store.lock(ctx)()
	st := r.store.st

	st.nextFlatID++
	now := r.store.now()
	flat.ID = st.nextFlatID
	flat.CreatedAt = now
	flat.UpdatedAt = now

	st.flats[flat.ID] = cloneFlat(flat)
	return flat, nil
}

func (r *FlatRepository) GetByID(ctx context.Context, id int64) (*domain.Flat, error) {
	defer r.store.lock(ctx)()

	f, ok := r.store.st.flats[id]
	if !ok {
		return nil, flatRepo.ErrFlatNotFound
	}
	return cloneFlat(f), nil
}

// LockForUpdate совпадает с GetByID: транзакция уже держит хранилище целиком
func (r *FlatRepository) LockForUpdate(ctx context.Context, id int64) (*domain.Flat, error) {
	return r.GetByID(ctx, id)
}

func (r *FlatRepository) ListIDs(ctx context.Context) ([]int64, error) {
	defer r.store.lock(ctx)()

	ids := make([]int64, 0, len(r.store.st.flats))
	for id := range r.store.st.flats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Delete удаляет квартиру вместе с календарем, скидками и бронированиями
func (r *FlatRepository) Delete(ctx context.Context, id int64) error {
	defer r.store.lock(ctx)()
	st := r.store.st

	if _, ok := st.flats[id]; !ok {
		return flatRepo.ErrFlatNotFound
	}

	delete(st.flats, id)
	delete(st.calendar, id)
	delete(st.discounts, id)
	for bid, b := range st.bookings {
		if b.FlatID == id {
			delete(st.bookings, bid)
		}
	}

	return nil
}
