package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
	"github.com/m04kA/SMC-FlatrentService/pkg/ptr"
)

const flatID = int64(1)

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func rng(from, to time.Time) domain.DateRange {
	return domain.MustDateRange(from, to)
}

// fakeBookings возвращает все бронирования без предфильтра,
// чтобы проверять именно предикат Timeline
type fakeBookings struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookings) FindOverlapping(_ context.Context, _ int64, _ domain.DateRange, _ *int64) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeCalendar struct {
	days []*domain.CalendarDay
}

func (f *fakeCalendar) GetRange(_ context.Context, _ int64, r domain.DateRange) ([]*domain.CalendarDay, error) {
	var out []*domain.CalendarDay
	for _, d := range f.days {
		if r.Contains(d.Date) {
			out = append(out, d)
		}
	}
	return out, nil
}

func openMarch() *fakeCalendar {
	cal := &fakeCalendar{}
	for d := date(3, 1); d.Before(date(4, 1)); d = d.AddDate(0, 0, 1) {
		cal.days = append(cal.days, &domain.CalendarDay{FlatID: flatID, Date: d, BasePrice: 1000, IsOpen: true})
	}
	return cal
}

func booking(id int64, from, to time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: id, FlatID: flatID, CheckinDate: from, CheckoutDate: to, Status: status}
}

func newChecker(bookings []*domain.Booking, cal *fakeCalendar) *Checker {
	return NewChecker(&fakeBookings{bookings: bookings}, cal, logger.Nop())
}

func TestChecker_IsAvailable_Overlaps(t *testing.T) {
	existing := []*domain.Booking{booking(1, date(3, 10), date(3, 15), domain.StatusPending)}
	checker := newChecker(existing, openMarch())
	ctx := context.Background()

	tests := []struct {
		name      string
		rng       domain.DateRange
		available bool
	}{
		{"starts inside", rng(date(3, 12), date(3, 20)), false},
		{"starts on checkin", rng(date(3, 10), date(3, 11)), false},
		{"checkin inside new range", rng(date(3, 5), date(3, 11)), false},
		{"covers booking", rng(date(3, 1), date(3, 31)), false},
		{"starts on checkout", rng(date(3, 15), date(3, 20)), true},
		{"ends on checkin", rng(date(3, 5), date(3, 10)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := checker.IsAvailable(ctx, flatID, tt.rng, nil, false)
			require.NoError(t, err)
			assert.Equal(t, tt.available, ok)
		})
	}
}

func TestChecker_IsAvailable_Monotonicity(t *testing.T) {
	b := booking(7, date(3, 10), date(3, 15), domain.StatusInProgress)
	ctx := context.Background()
	outer := rng(date(3, 8), date(3, 20))

	checker := newChecker([]*domain.Booking{b}, openMarch())
	ok, err := checker.IsAvailable(ctx, flatID, outer, nil, false)
	require.NoError(t, err)
	require.False(t, ok)

	// любой поддиапазон, пересекающий бронирование, тоже занят
	for start := outer.Start; start.Before(outer.End); start = start.AddDate(0, 0, 1) {
		for end := start.AddDate(0, 0, 1); !end.After(outer.End); end = end.AddDate(0, 0, 1) {
			sub := rng(start, end)
			if !sub.Overlaps(b.Range()) {
				continue
			}
			ok, err := checker.IsAvailable(ctx, flatID, sub, nil, false)
			require.NoError(t, err)
			assert.False(t, ok, "sub-range %s", sub)
		}
	}

	// исключение бронирования освобождает даты
	ok, err = checker.IsAvailable(ctx, flatID, outer, ptr.Ptr(b.ID), false)
	require.NoError(t, err)
	assert.True(t, ok)

	// отмена тоже
	b.Status = domain.StatusCancelled
	ok, err = checker.IsAvailable(ctx, flatID, outer, nil, false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChecker_Closures(t *testing.T) {
	cal := openMarch()
	cal.days[19].IsOpen = false // 20 марта
	checker := newChecker(nil, cal)
	ctx := context.Background()

	err := checker.Check(ctx, flatID, rng(date(3, 18), date(3, 22)), nil, false)
	require.ErrorIs(t, err, domain.ErrDateConflict)
	assert.Contains(t, err.Error(), "2025-03-20")

	ok, err := checker.IsAvailable(ctx, flatID, rng(date(3, 18), date(3, 22)), nil, true)
	require.NoError(t, err)
	assert.True(t, ok, "closures are ignored for calendar edits")

	ok, err = checker.IsAvailable(ctx, flatID, rng(date(3, 21), date(3, 25)), nil, false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChecker_ClosuresIgnoredStillSeeBookings(t *testing.T) {
	existing := []*domain.Booking{booking(3, date(3, 10), date(3, 12), domain.StatusCompleted)}
	checker := newChecker(existing, openMarch())

	err := checker.Check(context.Background(), flatID, rng(date(3, 11), date(3, 13)), nil, true)
	assert.ErrorIs(t, err, domain.ErrDateConflict)
}

func TestChecker_Errors(t *testing.T) {
	ctx := context.Background()

	checker := NewChecker(&fakeBookings{err: errors.New("connection reset")}, openMarch(), logger.Nop())
	_, err := checker.IsAvailable(ctx, flatID, rng(date(3, 1), date(3, 2)), nil, false)
	assert.ErrorIs(t, err, ErrInternal)

	err = checker.Check(ctx, flatID, domain.DateRange{Start: date(3, 5), End: date(3, 5)}, nil, false)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestTimeline_SortsAndFilters(t *testing.T) {
	tl := NewTimeline([]*domain.Booking{
		booking(1, date(3, 20), date(3, 22), domain.StatusPending),
		booking(2, date(3, 1), date(3, 3), domain.StatusCancelled),
		booking(3, date(3, 5), date(3, 8), domain.StatusCompleted),
		booking(4, date(3, 10), date(3, 12), domain.StatusPending),
	}, ptr.Ptr(int64(4)))

	require.Len(t, tl, 2)
	assert.Equal(t, int64(3), tl[0].ID)
	assert.Equal(t, int64(1), tl[1].ID)

	conflicts := tl.Conflicts(rng(date(3, 1), date(3, 31)))
	assert.Len(t, conflicts, 2)
	assert.Nil(t, tl.FirstConflict(rng(date(3, 8), date(3, 20))))
}
