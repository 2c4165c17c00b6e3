package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/calendar"
)

// CalendarRepository календарь в памяти
type CalendarRepository struct {
	store *Store
}

// NewCalendarRepository создает репозиторий календаря
func NewCalendarRepository(store *Store) *CalendarRepository {
	return &CalendarRepository{store: store}
}

func (r *CalendarRepository) GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error) {
	defer r.store.lock(ctx)()

	days := make([]*domain.CalendarDay, 0, rng.Nights())
	for date, day := range r.store.st.calendar[flatID] {
		if rng.Contains(date) {
			dayCopy := *day
			days = append(days, &dayCopy)
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

func (r *CalendarRepository) BulkSetOpen(ctx context.Context, flatID int64, rng domain.DateRange, isOpen bool) (int64, error) {
	defer r.store.lock(ctx)()

	var n int64
	r.forEachDay(flatID, rng, func(day *domain.CalendarDay) {
		day.IsOpen = isOpen
		n++
	})
	return n, nil
}

func (r *CalendarRepository) BulkSetPriceAndMinNights(ctx context.Context, flatID int64, rng domain.DateRange, basePrice *int64, minNights *int) (int64, error) {
	if basePrice == nil && minNights == nil {
		return 0, calendarRepo.ErrNothingToUpdate
	}

	defer r.store.lock(ctx)()

	var n int64
	r.forEachDay(flatID, rng, func(day *domain.CalendarDay) {
		if basePrice != nil {
			day.BasePrice = *basePrice
		}
		if minNights != nil {
			day.MinNights = *minNights
		}
		n++
	})
	return n, nil
}

// Seed создает недостающие дни, существующие не трогает
func (r *CalendarRepository) Seed(ctx context.Context, flatID int64, rng domain.DateRange, defaults domain.CalendarDefaults) (int64, error) {
	defer r.store.lock(ctx)()
	st := r.store.st

	if _, ok := st.flats[flatID]; !ok {
		return 0, calendarRepo.ErrFlatNotFound
	}

	days, ok := st.calendar[flatID]
	if !ok {
		days = make(map[time.Time]*domain.CalendarDay, rng.Nights())
		st.calendar[flatID] = days
	}

	var created int64
	for _, date := range rng.Days() {
		if _, exists := days[date]; exists {
			continue
		}
		days[date] = &domain.CalendarDay{
			FlatID:    flatID,
			Date:      date,
			BasePrice: defaults.BasePrice,
			MinNights: defaults.MinNights,
			IsOpen:    true,
		}
		created++
	}

	return created, nil
}

func (r *CalendarRepository) forEachDay(flatID int64, rng domain.DateRange, fn func(day *domain.CalendarDay)) {
	for date, day := range r.store.st.calendar[flatID] {
		if rng.Contains(date) {
			fn(day)
		}
	}
}
