package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

const (
	flatID     = int64(1)
	landlordID = int64(10)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeFlats struct{}

func (fakeFlats) GetByID(_ context.Context, id int64) (*domain.Flat, error) {
	if id != flatID {
		return nil, domain.ErrNotFound
	}
	return &domain.Flat{ID: flatID, LandlordID: landlordID}, nil
}

type fakeBookings struct{ bookings []*domain.Booking }

func (f *fakeBookings) ListByFlatAndYear(_ context.Context, _ int64, year int) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.CheckinDate.Year() == year || b.CheckoutDate.Year() == year {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCalendar struct {
	days      []*domain.CalendarDay
	requested domain.DateRange
}

func (f *fakeCalendar) GetRange(_ context.Context, _ int64, rng domain.DateRange) ([]*domain.CalendarDay, error) {
	f.requested = rng
	var out []*domain.CalendarDay
	for _, d := range f.days {
		if rng.Contains(d.Date) {
			out = append(out, d)
		}
	}
	return out, nil
}

// priced дни календаря с ценой 1000 на [from, to)
func priced(from, to time.Time) []*domain.CalendarDay {
	var days []*domain.CalendarDay
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, &domain.CalendarDay{FlatID: flatID, Date: d, BasePrice: 1000, IsOpen: true})
	}
	return days
}

func booking(id int64, from, to time.Time, price int64, source string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID: id, FlatID: flatID, CheckinDate: from, CheckoutDate: to,
		Price: price, Source: source, Status: status,
	}
}

func TestAggregate_MarchScenario(t *testing.T) {
	days := priced(date(2025, 3, 1), date(2025, 4, 1))
	bookings := []*domain.Booking{
		booking(1, date(2025, 3, 10), date(2025, 3, 15), 4500, "avito", domain.StatusCompleted),
	}

	stats := Aggregate(flatID, 2025, date(2025, 3, 20), days, bookings)

	march := stats.Months[2]
	assert.Equal(t, time.March, march.Month)
	assert.Equal(t, 31, march.Days)
	assert.Equal(t, 5, march.OccupiedDays)
	assert.Equal(t, int64(4500), march.Income)
	assert.Equal(t, int64(900), march.AvgDailyPrice)
	assert.Equal(t, 16, march.OccupancyPercent)
	assert.Equal(t, 1, march.BookingCount)
	assert.InDelta(t, 5.0, march.AvgStayLength, 1e-9)
	assert.True(t, march.Elapsed)

	assert.False(t, stats.Months[3].Elapsed)
	assert.True(t, stats.Months[0].Elapsed)
	assert.Equal(t, 0, stats.Months[3].Days)
	assert.Equal(t, 0, stats.Months[3].OccupancyPercent)

	assert.Equal(t, map[string]int{"avito": 1}, stats.Sources)
	assert.Equal(t, int64(4500), stats.TotalIncome)
	assert.Equal(t, 5, stats.TotalOccupiedDays)
	assert.Equal(t, 1, stats.TotalBookings)
}

func TestAggregate_CancelledExcluded(t *testing.T) {
	days := priced(date(2025, 3, 1), date(2025, 4, 1))
	bookings := []*domain.Booking{
		booking(1, date(2025, 3, 10), date(2025, 3, 15), 4500, "avito", domain.StatusCompleted),
		booking(2, date(2025, 3, 20), date(2025, 3, 25), 5000, "booking", domain.StatusCancelled),
	}

	stats := Aggregate(flatID, 2025, date(2025, 6, 1), days, bookings)

	assert.Equal(t, 5, stats.Months[2].OccupiedDays)
	assert.Equal(t, 1, stats.Months[2].BookingCount)
	assert.NotContains(t, stats.Sources, "booking")
}

func TestAggregate_MonthMembershipByEndpoints(t *testing.T) {
	days := priced(date(2025, 1, 1), date(2026, 1, 1))
	bookings := []*domain.Booking{
		booking(1, date(2025, 2, 25), date(2025, 4, 5), 39000, "direct", domain.StatusCompleted),
	}

	stats := Aggregate(flatID, 2025, date(2025, 12, 31), days, bookings)

	feb, march, april := stats.Months[1], stats.Months[2], stats.Months[3]

	assert.Equal(t, 4, feb.OccupiedDays)
	assert.Equal(t, 1, feb.BookingCount)

	// март целиком внутри бронирования, но ни заезд, ни выезд на него не приходятся
	assert.Equal(t, 0, march.OccupiedDays)
	assert.Equal(t, 0, march.BookingCount)

	assert.Equal(t, 4, april.OccupiedDays)
	assert.Equal(t, 1, april.BookingCount)
	assert.InDelta(t, 39.0, april.AvgStayLength, 1e-9)

	assert.Equal(t, 1, stats.TotalBookings)
}

func TestAggregate_RealizedDiscountPerDay(t *testing.T) {
	days := priced(date(2025, 5, 1), date(2025, 6, 1))
	bookings := []*domain.Booking{
		// база 3000, цена 2000: скидка 33%
		booking(1, date(2025, 5, 1), date(2025, 5, 4), 2000, "avito", domain.StatusCompleted),
		// база 2000, цена 2000: без скидки
		booking(2, date(2025, 5, 10), date(2025, 5, 12), 2000, "avito", domain.StatusCompleted),
	}

	stats := Aggregate(flatID, 2025, date(2025, 5, 1), days, bookings)

	may := stats.Months[4]
	assert.Equal(t, 5, may.OccupiedDays)
	assert.Equal(t, int64(3*670+2*1000), may.Income)
	assert.Equal(t, int64(4010/5), may.AvgDailyPrice)
	assert.InDelta(t, 2.5, may.AvgStayLength, 1e-9)
	assert.Equal(t, map[string]int{"avito": 2}, stats.Sources)
	assert.True(t, may.Elapsed, "current month is tagged as elapsed")
}

func TestAggregate_OccupancyRoundsHalfToEven(t *testing.T) {
	// в календаре только 8 дней июня
	days := priced(date(2025, 6, 1), date(2025, 6, 9))
	bookings := []*domain.Booking{
		booking(1, date(2025, 6, 1), date(2025, 6, 2), 1000, "avito", domain.StatusCompleted),
	}

	stats := Aggregate(flatID, 2025, date(2025, 7, 1), days, bookings)
	june := stats.Months[5]
	assert.Equal(t, 8, june.Days)
	assert.Equal(t, 1, june.OccupiedDays)
	assert.Equal(t, 12, june.OccupancyPercent) // 12.5

	bookings = append(bookings, booking(2, date(2025, 6, 4), date(2025, 6, 6), 2000, "avito", domain.StatusCompleted))
	stats = Aggregate(flatID, 2025, date(2025, 7, 1), days, bookings)
	june = stats.Months[5]
	assert.Equal(t, 3, june.OccupiedDays)
	assert.Equal(t, 38, june.OccupancyPercent) // 37.5
}

func TestService_YearStats_SpansYearBoundary(t *testing.T) {
	cal := &fakeCalendar{days: priced(date(2024, 12, 1), date(2026, 2, 1))}
	repo := &fakeBookings{bookings: []*domain.Booking{
		booking(1, date(2024, 12, 30), date(2025, 1, 3), 4000, "avito", domain.StatusCompleted),
		booking(2, date(2025, 12, 30), date(2026, 1, 2), 2700, "site", domain.StatusPending),
	}}

	svc := NewService(fakeFlats{}, repo, cal, logger.Nop()).
		WithTimeProvider(fixedTime{now: date(2025, 7, 1)})

	stats, err := svc.GetYearStats(context.Background(), landlordID, flatID, 2025)
	require.NoError(t, err)

	assert.Equal(t, date(2024, 12, 30), cal.requested.Start)
	assert.Equal(t, date(2026, 1, 2), cal.requested.End)

	jan := stats.Months[0]
	assert.Equal(t, 2, jan.OccupiedDays)
	assert.Equal(t, int64(2000), jan.Income)

	dec := stats.Months[11]
	assert.Equal(t, 2, dec.OccupiedDays)
	assert.Equal(t, int64(1800), dec.Income) // база 3000, скидка 10%
	assert.False(t, dec.Elapsed)

	assert.Equal(t, map[string]int{"avito": 1, "site": 1}, stats.Sources)
	assert.Equal(t, 2, stats.TotalBookings)
}

func TestService_GetYearStats_Errors(t *testing.T) {
	svc := NewService(fakeFlats{}, &fakeBookings{}, &fakeCalendar{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.GetYearStats(ctx, landlordID, 99, 2025)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetYearStats(ctx, landlordID+1, flatID, 2025)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.GetYearStats(ctx, landlordID, flatID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
