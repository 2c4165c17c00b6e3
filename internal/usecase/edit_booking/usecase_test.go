package edit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-FlatrentService/internal/service/availability"
	"github.com/m04kA/SMC-FlatrentService/internal/service/tenants"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
	"github.com/m04kA/SMC-FlatrentService/pkg/metrics"
	"github.com/m04kA/SMC-FlatrentService/pkg/ptr"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	uc       *UseCase
	flatID   int64
	calendar *memory.CalendarRepository
	bookings *memory.BookingRepository
	tenants  *memory.TenantRepository
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	store := memory.NewStore()
	flats := memory.NewFlatRepository(store)
	calendar := memory.NewCalendarRepository(store)
	bookings := memory.NewBookingRepository(store)
	tenantRepo := memory.NewTenantRepository(store)
	log := logger.Nop()

	flat, err := flats.Create(ctx, &domain.Flat{LandlordID: 1, Name: "Студия", Address: "Невский 1"})
	require.NoError(t, err)
	_, err = calendar.Seed(ctx, flat.ID, domain.MustDateRange(date(3, 1), date(5, 1)), domain.CalendarDefaults{BasePrice: 1000, MinNights: 1})
	require.NoError(t, err)
	require.NoError(t, tenantRepo.Upsert(ctx, &domain.Tenant{Phone: "+79990000001", Name: "Анна"}))

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	uc := NewUseCase(
		flats,
		calendar,
		bookings,
		availability.NewChecker(bookings, calendar, log),
		tenants.NewService(tenantRepo, log),
		memory.NewTxManager(store),
		m,
		log,
	).WithTimeProvider(fixedTime{now: date(3, 1)})

	return &fixture{uc: uc, flatID: flat.ID, calendar: calendar, bookings: bookings, tenants: tenantRepo, metrics: m}
}

func (f *fixture) book(t *testing.T, from, to time.Time) *domain.Booking {
	t.Helper()

	b, err := f.bookings.Create(context.Background(), &domain.Booking{
		FlatID:       f.flatID,
		Source:       "avito",
		Status:       domain.InitialStatus(from, to, date(3, 1)),
		CheckinDate:  from,
		CheckoutDate: to,
		Price:        int64(domain.DaysBetween(from, to)) * 1000,
		TenantPhone:  "+79990000001",
		BookedAt:     date(3, 1),
	})
	require.NoError(t, err)
	return b
}

func request(b *domain.Booking, from, to time.Time) *Request {
	return &Request{
		LandlordID:   1,
		BookingID:    b.ID,
		CheckinDate:  from,
		CheckoutDate: to,
		Source:       b.Source,
		TenantPhone:  b.TenantPhone,
		TenantName:   "Анна",
	}
}

func TestUseCase_Execute_ExcludesItself(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, date(3, 10), date(3, 15))

	resp, err := f.uc.Execute(context.Background(), request(b, date(3, 12), date(3, 17)))
	require.NoError(t, err)

	assert.Equal(t, date(3, 12), resp.CheckinDate)
	assert.Equal(t, date(3, 17), resp.CheckoutDate)
	assert.Equal(t, 5, resp.Nights)
	assert.Equal(t, b.Price, resp.Price)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsWritten.WithLabelValues("edit", "pending")))
}

func TestUseCase_Execute_UpdatesFieldsAndTenant(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, date(3, 10), date(3, 15))

	req := request(b, date(3, 10), date(3, 15))
	req.Price = ptr.Ptr(int64(4200))
	req.Comment = ptr.Ptr("поздний заезд")
	req.Source = "sutochno"
	req.TenantPhone = "+7 999 000 00 02"
	req.TenantName = "иван"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), resp.Price)
	assert.Equal(t, "sutochno", resp.Source)
	assert.Equal(t, "+79990000002", resp.TenantPhone)
	assert.Equal(t, "Иван", resp.TenantName)
	require.NotNil(t, resp.Comment)
	assert.Equal(t, "поздний заезд", *resp.Comment)

	stored, err := f.bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "+79990000002", stored.TenantPhone)
	assert.Equal(t, 2, f.tenants.Count(context.Background()))
}

func TestUseCase_Execute_RejectsAtomically(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, date(3, 10), date(3, 15))
	f.book(t, date(3, 20), date(3, 25))

	_, err := f.calendar.BulkSetPriceAndMinNights(ctx, f.flatID, domain.MustDateRange(date(3, 11), date(3, 12)), nil, ptr.Ptr(7))
	require.NoError(t, err)

	before, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)

	req := request(b, date(3, 11), date(3, 14))
	req.TenantName = "Мария"
	req.Price = ptr.Ptr(int64(100))
	req.Comment = ptr.Ptr("другой комментарий")
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrBelowMinimumStay)

	req = request(b, date(3, 10), date(3, 21))
	req.Price = ptr.Ptr(int64(100))
	req.Source = "sutochno"
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDateConflict)

	stored, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, before, stored)
	assert.Equal(t, b.Price, stored.Price)
	assert.Equal(t, domain.StatusPending, stored.Status)

	tenant, err := f.tenants.FindByPhone(ctx, "+79990000001")
	require.NoError(t, err)
	assert.Equal(t, "Анна", tenant.Name)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingConflicts.WithLabelValues("min_nights")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingConflicts.WithLabelValues("unavailable")))
}

func TestUseCase_Execute_StatusRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, date(3, 10), date(3, 15))
	f.book(t, date(3, 20), date(3, 25))

	// явная отмена через редактирование
	req := request(b, date(3, 10), date(3, 15))
	req.Status = ptr.Ptr(string(domain.StatusCancelled))
	resp, err := f.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	// отмененное остается отмененным, даты проверяются как обычно
	_, err = f.uc.Execute(ctx, request(b, date(3, 19), date(3, 23)))
	assert.ErrorIs(t, err, domain.ErrDateConflict)

	resp, err = f.uc.Execute(ctx, request(b, date(3, 16), date(3, 19)))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, date(3, 16), resp.CheckinDate)

	// явная отмена не проверяет пересечения
	req = request(b, date(3, 19), date(3, 23))
	req.Status = ptr.Ptr(string(domain.StatusCancelled))
	resp, err = f.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, date(3, 19), resp.CheckinDate)

	// восстановить нельзя
	req = request(b, date(3, 1), date(3, 3))
	req.Status = ptr.Ptr(string(domain.StatusPending))
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrStatusTransition)

	req.Status = ptr.Ptr("archived")
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUseCase_Execute_StatusFollowsDates(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, date(3, 10), date(3, 15))
	f.uc.WithTimeProvider(fixedTime{now: date(3, 12)})

	resp, err := f.uc.Execute(context.Background(), request(b, date(3, 10), date(3, 15)))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), resp.Status)

	req := request(b, date(3, 10), date(3, 15))
	req.Status = ptr.Ptr(string(domain.StatusCompleted))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrStatusTransition)
}

func TestUseCase_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, date(3, 10), date(3, 15))

	resp, err := f.uc.Cancel(ctx, &CancelRequest{LandlordID: 1, BookingID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, "Анна", resp.TenantName)

	overlapping, err := f.bookings.FindOverlapping(ctx, f.flatID, domain.MustDateRange(date(3, 10), date(3, 15)), nil)
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	// повторная отмена разрешена
	_, err = f.uc.Cancel(ctx, &CancelRequest{LandlordID: 1, BookingID: b.ID})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.BookingsWritten.WithLabelValues("cancel", "cancelled")))
}

func TestUseCase_Cancel_Completed(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, date(3, 10), date(3, 15))

	// статус хранится, а не пересчитывается: завершаем редактированием
	f.uc.WithTimeProvider(fixedTime{now: date(3, 20)})
	resp, err := f.uc.Execute(context.Background(), request(b, date(3, 10), date(3, 15)))
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCompleted), resp.Status)

	_, err = f.uc.Cancel(context.Background(), &CancelRequest{LandlordID: 1, BookingID: b.ID})
	assert.ErrorIs(t, err, domain.ErrStatusTransition)
}

func TestUseCase_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, date(3, 10), date(3, 15))

	req := request(b, date(3, 10), date(3, 15))
	req.LandlordID = 2
	_, err := f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Cancel(ctx, &CancelRequest{LandlordID: 2, BookingID: b.ID})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Cancel(ctx, &CancelRequest{LandlordID: 1, BookingID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Execute(ctx, request(b, date(3, 15), date(3, 10)))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = f.uc.Cancel(ctx, &CancelRequest{LandlordID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
