package update_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-FlatrentService/internal/service/availability"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
	"github.com/m04kA/SMC-FlatrentService/pkg/ptr"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	uc       *UseCase
	flatID   int64
	calendar *memory.CalendarRepository
	bookings *memory.BookingRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()
	flats := memory.NewFlatRepository(store)
	calendar := memory.NewCalendarRepository(store)
	bookings := memory.NewBookingRepository(store)
	tenants := memory.NewTenantRepository(store)

	flat, err := flats.Create(ctx, &domain.Flat{LandlordID: 1, Name: "Студия", Address: "Невский 1"})
	require.NoError(t, err)
	_, err = calendar.Seed(ctx, flat.ID, domain.MustDateRange(date(3, 1), date(4, 1)), domain.CalendarDefaults{BasePrice: 1000})
	require.NoError(t, err)
	require.NoError(t, tenants.Upsert(ctx, &domain.Tenant{Phone: "+79990000001", Name: "Анна"}))

	uc := NewUseCase(
		flats,
		calendar,
		availability.NewChecker(bookings, calendar, logger.Nop()),
		memory.NewTxManager(store),
		logger.Nop(),
	)

	return &fixture{uc: uc, flatID: flat.ID, calendar: calendar, bookings: bookings}
}

func (f *fixture) book(t *testing.T, from, to time.Time, status domain.BookingStatus) {
	t.Helper()

	_, err := f.bookings.Create(context.Background(), &domain.Booking{
		FlatID:       f.flatID,
		Status:       status,
		CheckinDate:  from,
		CheckoutDate: to,
		TenantPhone:  "+79990000001",
	})
	require.NoError(t, err)
}

func TestUseCase_Execute_PriceAndMinNights(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		LandlordID: 1,
		FlatID:     f.flatID,
		From:       date(3, 10),
		To:         date(3, 12),
		BasePrice:  ptr.Ptr(int64(3000)),
		MinNights:  ptr.Ptr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Updated)
	assert.Equal(t, date(3, 12), resp.To)
	require.Len(t, resp.Days, 3)
	for _, d := range resp.Days {
		assert.Equal(t, int64(3000), d.BasePrice)
		assert.Equal(t, 2, d.MinNights)
		assert.True(t, d.IsOpen)
	}

	// соседние дни не тронуты
	days, err := f.calendar.GetRange(context.Background(), f.flatID, domain.MustDateRange(date(3, 13), date(3, 14)))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, int64(1000), days[0].BasePrice)
}

func TestUseCase_Execute_SingleDayOnlyPrice(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		LandlordID: 1,
		FlatID:     f.flatID,
		From:       date(3, 5),
		To:         date(3, 5),
		BasePrice:  ptr.Ptr(int64(0)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, int64(0), resp.Days[0].BasePrice)
	assert.Equal(t, 0, resp.Days[0].MinNights)
}

func TestUseCase_Execute_CloseBookedDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, date(3, 10), date(3, 15), domain.StatusPending)
	f.book(t, date(3, 20), date(3, 25), domain.StatusCancelled)

	_, err := f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: f.flatID, From: date(3, 14), To: date(3, 16), IsOpen: ptr.Ptr(false)})
	assert.ErrorIs(t, err, domain.ErrDateConflict)

	days, err := f.calendar.GetRange(ctx, f.flatID, domain.MustDateRange(date(3, 14), date(3, 17)))
	require.NoError(t, err)
	for _, d := range days {
		assert.True(t, d.IsOpen)
	}

	// день выезда и дни отмененного бронирования закрыть можно
	resp, err := f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: f.flatID, From: date(3, 15), To: date(3, 22), IsOpen: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.Updated)

	// повторное закрытие частично закрытого диапазона
	_, err = f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: f.flatID, From: date(3, 16), To: date(3, 30), IsOpen: ptr.Ptr(false)})
	require.NoError(t, err)

	resp, err = f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: f.flatID, From: date(3, 15), To: date(3, 31), IsOpen: ptr.Ptr(true)})
	require.NoError(t, err)
	for _, d := range resp.Days {
		assert.True(t, d.IsOpen)
	}
}

func TestUseCase_Execute_PartialWindow(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		LandlordID: 1,
		FlatID:     f.flatID,
		From:       date(3, 30),
		To:         date(4, 5),
		MinNights:  ptr.Ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Updated)
	assert.Len(t, resp.Days, 2)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: f.flatID, From: date(3, 1), To: date(3, 2)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: f.flatID, From: date(3, 5), To: date(3, 4), IsOpen: ptr.Ptr(true)})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: f.flatID, From: date(3, 1), To: date(3, 1).AddDate(2, 1, 0), IsOpen: ptr.Ptr(true)})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: f.flatID, From: date(3, 1), To: date(3, 2), BasePrice: ptr.Ptr(int64(-5))})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = f.uc.Execute(ctx, &Request{LandlordID: 2, FlatID: f.flatID, From: date(3, 1), To: date(3, 2), IsOpen: ptr.Ptr(false)})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Execute(ctx, &Request{LandlordID: 1, FlatID: 42, From: date(3, 1), To: date(3, 2), IsOpen: ptr.Ptr(false)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
