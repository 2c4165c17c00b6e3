package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/booking"
)

// BookingRepository бронирования в памяти.
// Повторяет ограничения таблицы bookings: внешние ключи на квартиру и гостя
// и запрет пересечения активных бронирований одной квартиры.
type BookingRepository struct {
	store *Store
}

// NewBookingRepository создает репозиторий бронирований
func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	defer r.store.lock(ctx)()
	st := r.store.st

	if err := r.checkConstraints(booking); err != nil {
		return nil, err
	}

	st.nextBookingID++
	now := r.store.now()
	booking.ID = st.nextBookingID
	booking.CheckinDate = domain.DateOnly(booking.CheckinDate)
	booking.CheckoutDate = domain.DateOnly(booking.CheckoutDate)
	booking.CreatedAt = now
	booking.UpdatedAt = now

	st.bookings[booking.ID] = booking.Clone()
	return booking, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	defer r.store.lock(ctx)()

	b, ok := r.store.st.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b.Clone(), nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64) ([]*domain.Booking, error) {
	defer r.store.lock(ctx)()

	out := make([]*domain.Booking, 0)
	for _, b := range r.store.st.bookings {
		if b.FlatID != flatID || b.IsCancelled() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Range().Overlaps(rng) {
			out = append(out, b.Clone())
		}
	}

	sortByCheckin(out)
	return out, nil
}

func (r *BookingRepository) ListByFlatAndYear(ctx context.Context, flatID int64, year int) ([]*domain.Booking, error) {
	defer r.store.lock(ctx)()

	out := make([]*domain.Booking, 0)
	for _, b := range r.store.st.bookings {
		if b.FlatID != flatID {
			continue
		}
		if b.CheckinDate.Year() == year || b.CheckoutDate.Year() == year {
			out = append(out, b.Clone())
		}
	}

	sortByCheckin(out)
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	defer r.store.lock(ctx)()
	st := r.store.st

	stored, ok := st.bookings[booking.ID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}

	if err := r.checkConstraints(booking); err != nil {
		return nil, err
	}

	updated := booking.Clone()
	updated.FlatID = stored.FlatID
	updated.BookedAt = stored.BookedAt
	updated.CreatedAt = stored.CreatedAt
	updated.CheckinDate = domain.DateOnly(updated.CheckinDate)
	updated.CheckoutDate = domain.DateOnly(updated.CheckoutDate)
	updated.UpdatedAt = r.store.now()

	st.bookings[booking.ID] = updated
	return updated.Clone(), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	defer r.store.lock(ctx)()

	b, ok := r.store.st.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = r.store.now()
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.st.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.store.st.bookings, id)
	return nil
}

// checkConstraints вызывается под мьютексом хранилища
func (r *BookingRepository) checkConstraints(booking *domain.Booking) error {
	st := r.store.st

	if _, ok := st.flats[booking.FlatID]; !ok {
		return bookingRepo.ErrReferenceNotFound
	}
	if _, ok := st.tenants[booking.TenantPhone]; !ok {
		return bookingRepo.ErrReferenceNotFound
	}

	if booking.IsCancelled() {
		return nil
	}

	for _, other := range st.bookings {
		if other.ID == booking.ID || other.FlatID != booking.FlatID || other.IsCancelled() {
			continue
		}
		if other.Range().Overlaps(booking.Range()) {
			return bookingRepo.ErrDateConflict
		}
	}

	return nil
}

func sortByCheckin(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CheckinDate.Equal(bookings[j].CheckinDate) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].CheckinDate.Before(bookings[j].CheckinDate)
	})
}
