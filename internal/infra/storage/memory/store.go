package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Store хранилище в памяти с теми же контрактами, что и репозитории PostgreSQL.
// Используется в тестах и при storage.driver = "memory".
//
// Все операции сериализуются одним мьютексом. Транзакция держит мьютекс
// до завершения и при ошибке восстанавливает снимок состояния.
type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time
}

type state struct {
	flats     map[int64]*domain.Flat
	calendar  map[int64]map[time.Time]*domain.CalendarDay
	discounts map[int64][]*domain.DiscountTier
	bookings  map[int64]*domain.Booking
	tenants   map[string]*domain.Tenant

	nextFlatID    int64
	nextBookingID int64
	nextTierID    int64
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		st: &state{
			flats:     make(map[int64]*domain.Flat),
			calendar:  make(map[int64]map[time.Time]*domain.CalendarDay),
			discounts: make(map[int64][]*domain.DiscountTier),
			bookings:  make(map[int64]*domain.Booking),
			tenants:   make(map[string]*domain.Tenant),
		},
		now: time.Now,
	}
}

// WithClock подменяет источник времени для created_at/updated_at (для тестов)
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

type txKey struct{}

// inTx проверяет, что контекст принадлежит транзакции этого хранилища
func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// lock захватывает мьютекс, если вызов не внутри транзакции (она его уже держит)
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (st *state) clone() *state {
	c := &state{
		flats:         make(map[int64]*domain.Flat, len(st.flats)),
		calendar:      make(map[int64]map[time.Time]*domain.CalendarDay, len(st.calendar)),
		discounts:     make(map[int64][]*domain.DiscountTier, len(st.discounts)),
		bookings:      make(map[int64]*domain.Booking, len(st.bookings)),
		tenants:       make(map[string]*domain.Tenant, len(st.tenants)),
		nextFlatID:    st.nextFlatID,
		nextBookingID: st.nextBookingID,
		nextTierID:    st.nextTierID,
	}

	for id, f := range st.flats {
		c.flats[id] = cloneFlat(f)
	}
	for id, days := range st.calendar {
		cd := make(map[time.Time]*domain.CalendarDay, len(days))
		for d, day := range days {
			dayCopy := *day
			cd[d] = &dayCopy
		}
		c.calendar[id] = cd
	}
	for id, tiers := range st.discounts {
		c.discounts[id] = cloneTiers(tiers)
	}
	for id, b := range st.bookings {
		c.bookings[id] = b.Clone()
	}
	for phone, t := range st.tenants {
		tenantCopy := *t
		c.tenants[phone] = &tenantCopy
	}

	return c
}

func cloneFlat(f *domain.Flat) *domain.Flat {
	c := *f
	c.LinkSites = cloneString(f.LinkSites)
	c.LinkTenants = cloneString(f.LinkTenants)
	c.Comment = cloneString(f.Comment)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTiers(tiers []*domain.DiscountTier) []*domain.DiscountTier {
	out := make([]*domain.DiscountTier, len(tiers))
	for i, t := range tiers {
		tierCopy := *t
		out[i] = &tierCopy
	}
	return out
}
