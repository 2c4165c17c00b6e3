package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Timeline активные бронирования одной квартиры, упорядоченные по дате заезда
type Timeline []*domain.Booking

// NewTimeline отбрасывает отмененные бронирования и бронирование excludeID
func NewTimeline(bookings []*domain.Booking, excludeID *int64) Timeline {
	t := make(Timeline, 0, len(bookings))
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		t = append(t, b)
	}

	sort.SliceStable(t, func(i, j int) bool {
		return t[i].CheckinDate.Before(t[j].CheckinDate)
	})

	return t
}

// Conflicts возвращает бронирования, занимающие хотя бы один день диапазона.
// Бронирование конфликтует, если:
//   - checkin <= start < checkout (диапазон начинается внутри бронирования)
//   - start < checkin < end (заезд попадает внутрь диапазона)
func (t Timeline) Conflicts(rng domain.DateRange) []*domain.Booking {
	var conflicts []*domain.Booking

	for _, b := range t {
		checkin := domain.DateOnly(b.CheckinDate)
		checkout := domain.DateOnly(b.CheckoutDate)

		// дальше заезды только позже конца диапазона
		if !checkin.Before(rng.End) {
			break
		}

		startInside := !checkin.After(rng.Start) && rng.Start.Before(checkout)
		checkinInside := rng.Start.Before(checkin) && checkin.Before(rng.End)

		if startInside || checkinInside {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}

// FirstConflict возвращает самое раннее конфликтующее бронирование или nil
func (t Timeline) FirstConflict(rng domain.DateRange) *domain.Booking {
	conflicts := t.Conflicts(rng)
	if len(conflicts) == 0 {
		return nil
	}
	return conflicts[0]
}

// ClosedDays возвращает закрытые дни календаря внутри диапазона
func ClosedDays(days []*domain.CalendarDay, rng domain.DateRange) []time.Time {
	var closed []time.Time
	for _, d := range days {
		if !d.IsOpen && rng.Contains(d.Date) {
			closed = append(closed, domain.DateOnly(d.Date))
		}
	}

	sort.Slice(closed, func(i, j int) bool { return closed[i].Before(closed[j]) })

	return closed
}
