package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	store     *Store
	tx        *TxManager
	flats     *FlatRepository
	calendar  *CalendarRepository
	discounts *DiscountRepository
	bookings  *BookingRepository
	tenants   *TenantRepository
}

func newFixture(t *testing.T) (*fixture, *domain.Flat) {
	t.Helper()

	store := NewStore().WithClock(func() time.Time { return date(3, 1) })
	f := &fixture{
		store:     store,
		tx:        NewTxManager(store),
		flats:     NewFlatRepository(store),
		calendar:  NewCalendarRepository(store),
		discounts: NewDiscountRepository(store),
		bookings:  NewBookingRepository(store),
		tenants:   NewTenantRepository(store),
	}

	ctx := context.Background()
	flat, err := f.flats.Create(ctx, &domain.Flat{LandlordID: 1, Name: "Студия", Address: "Невский 1"})
	require.NoError(t, err)

	_, err = f.calendar.Seed(ctx, flat.ID, domain.MustDateRange(date(3, 1), date(4, 1)), domain.CalendarDefaults{BasePrice: 1000})
	require.NoError(t, err)
	require.NoError(t, f.tenants.Upsert(ctx, &domain.Tenant{Phone: "+7999", Name: "Анна"}))

	return f, flat
}

func TestTxManager_RollbackOnError(t *testing.T) {
	f, flat := newFixture(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := f.tx.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := f.bookings.Create(txCtx, &domain.Booking{
			FlatID: flat.ID, Status: domain.StatusPending, TenantPhone: "+7999",
			CheckinDate: date(3, 10), CheckoutDate: date(3, 15), Price: 5000,
		})
		require.NoError(t, err)

		_, err = f.calendar.BulkSetOpen(txCtx, flat.ID, domain.MustDateRange(date(3, 1), date(3, 5)), false)
		require.NoError(t, err)

		require.NoError(t, f.tenants.Upsert(txCtx, &domain.Tenant{Phone: "+7999", Name: "Мария"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	bookings, err := f.bookings.ListByFlatAndYear(ctx, flat.ID, 2025)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	days, err := f.calendar.GetRange(ctx, flat.ID, domain.MustDateRange(date(3, 1), date(3, 5)))
	require.NoError(t, err)
	for _, d := range days {
		assert.True(t, d.IsOpen)
	}

	tenant, err := f.tenants.FindByPhone(ctx, "+7999")
	require.NoError(t, err)
	assert.Equal(t, "Анна", tenant.Name)
}

func TestTxManager_NestedAndCommit(t *testing.T) {
	f, flat := newFixture(t)
	ctx := context.Background()

	err := f.tx.DoSerializable(ctx, func(txCtx context.Context) error {
		return f.tx.Do(txCtx, func(inner context.Context) error {
			_, err := f.calendar.BulkSetPriceAndMinNights(inner, flat.ID, domain.MustDateRange(date(3, 1), date(3, 3)), nil, func() *int { v := 2; return &v }())
			return err
		})
	})
	require.NoError(t, err)

	days, err := f.calendar.GetRange(ctx, flat.ID, domain.MustDateRange(date(3, 1), date(3, 4)))
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, 2, days[0].MinNights)
	assert.Equal(t, 2, days[1].MinNights)
	assert.Equal(t, 0, days[2].MinNights)
	assert.Equal(t, int64(1000), days[2].BasePrice)
}

func TestBookingRepository_Constraints(t *testing.T) {
	f, flat := newFixture(t)
	ctx := context.Background()

	first, err := f.bookings.Create(ctx, &domain.Booking{
		FlatID: flat.ID, Status: domain.StatusPending, TenantPhone: "+7999",
		CheckinDate: date(3, 10), CheckoutDate: date(3, 15),
	})
	require.NoError(t, err)

	_, err = f.bookings.Create(ctx, &domain.Booking{
		FlatID: flat.ID, Status: domain.StatusPending, TenantPhone: "+7999",
		CheckinDate: date(3, 14), CheckoutDate: date(3, 16),
	})
	assert.ErrorIs(t, err, domain.ErrDateConflict)

	_, err = f.bookings.Create(ctx, &domain.Booking{
		FlatID: flat.ID, Status: domain.StatusPending, TenantPhone: "+7000",
		CheckinDate: date(3, 20), CheckoutDate: date(3, 22),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown tenant")

	require.NoError(t, f.bookings.UpdateStatus(ctx, first.ID, domain.StatusCancelled))

	overlapping, err := f.bookings.FindOverlapping(ctx, flat.ID, domain.MustDateRange(date(3, 1), date(3, 31)), nil)
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	_, err = f.bookings.Create(ctx, &domain.Booking{
		FlatID: flat.ID, Status: domain.StatusPending, TenantPhone: "+7999",
		CheckinDate: date(3, 14), CheckoutDate: date(3, 16),
	})
	assert.NoError(t, err, "cancelled booking frees its dates")
}

func TestFlatRepository_DeleteCascades(t *testing.T) {
	f, flat := newFixture(t)
	ctx := context.Background()

	_, err := f.discounts.ReplaceTiers(ctx, flat.ID, []*domain.DiscountTier{{NightsThreshold: 7, DiscountPercent: 5}})
	require.NoError(t, err)
	b, err := f.bookings.Create(ctx, &domain.Booking{
		FlatID: flat.ID, Status: domain.StatusPending, TenantPhone: "+7999",
		CheckinDate: date(3, 10), CheckoutDate: date(3, 15),
	})
	require.NoError(t, err)

	require.NoError(t, f.flats.Delete(ctx, flat.ID))

	_, err = f.bookings.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	tiers, err := f.discounts.ListTiers(ctx, flat.ID)
	require.NoError(t, err)
	assert.Empty(t, tiers)

	days, err := f.calendar.GetRange(ctx, flat.ID, domain.MustDateRange(date(3, 1), date(4, 1)))
	require.NoError(t, err)
	assert.Empty(t, days)

	assert.Equal(t, 1, f.tenants.Count(ctx), "tenants outlive flats")
}

func TestDiscountRepository_ReplaceTiers(t *testing.T) {
	f, flat := newFixture(t)
	ctx := context.Background()

	_, err := f.discounts.ReplaceTiers(ctx, flat.ID, []*domain.DiscountTier{
		{NightsThreshold: 7, DiscountPercent: 5},
		{NightsThreshold: 14, DiscountPercent: 5},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscountConfig)

	saved, err := f.discounts.ReplaceTiers(ctx, flat.ID, []*domain.DiscountTier{
		{NightsThreshold: 30, DiscountPercent: 10},
		{NightsThreshold: 7, DiscountPercent: 5},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, 7, saved[0].NightsThreshold)

	saved[0].DiscountPercent = 50
	tiers, err := f.discounts.ListTiers(ctx, flat.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, tiers[0].DiscountPercent, "returned tiers are copies")
}

func TestCalendarRepository_SeedIsIdempotent(t *testing.T) {
	f, flat := newFixture(t)
	ctx := context.Background()

	n, err := f.calendar.Seed(ctx, flat.ID, domain.MustDateRange(date(3, 25), date(4, 5)), domain.CalendarDefaults{BasePrice: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	days, err := f.calendar.GetRange(ctx, flat.ID, domain.MustDateRange(date(3, 31), date(4, 2)))
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, int64(1000), days[0].BasePrice)
	assert.Equal(t, int64(5), days[1].BasePrice)

	_, err = f.calendar.Seed(ctx, 999, domain.MustDateRange(date(3, 1), date(3, 2)), domain.CalendarDefaults{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
