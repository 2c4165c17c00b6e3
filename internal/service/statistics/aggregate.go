package statistics

import (
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/service/pricing"
)

// Aggregate сворачивает бронирования и дни календаря квартиры в помесячную статистику года.
//
// Бронирование относится к месяцу, только если в этот месяц попадает дата заезда
// или выезда. Бронирование, целиком накрывающее месяц, в нем не учитывается.
// Это известное ограничение, оно сохранено намеренно.
//
// days должны покрывать даты всех бронирований, иначе фактическая скидка
// будет посчитана по неполной базовой цене.
func Aggregate(flatID int64, year int, today time.Time, days []*domain.CalendarDay, bookings []*domain.Booking) *domain.YearStats {
	stats := &domain.YearStats{
		FlatID:  flatID,
		Year:    year,
		Sources: make(map[string]int),
	}

	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}

	realized := make(map[*domain.Booking]int, len(active))
	for _, b := range active {
		realized[b] = pricing.RealizedDiscount(pricing.SumBasePrice(days, b.Range()), b.Price)
	}

	todayDate := domain.DateOnly(today)

	for i := range stats.Months {
		month := time.Month(i + 1)
		monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		monthRange := domain.DateRange{Start: monthStart, End: monthStart.AddDate(0, 1, 0)}

		ms := domain.MonthlyStats{
			Month:   month,
			Elapsed: !monthStart.After(todayDate),
		}

		var monthBookings []*domain.Booking
		for _, b := range active {
			if inMonth(b.CheckinDate, year, month) || inMonth(b.CheckoutDate, year, month) {
				monthBookings = append(monthBookings, b)
			}
		}

		for _, d := range days {
			if !monthRange.Contains(d.Date) {
				continue
			}
			ms.Days++
			for _, b := range monthBookings {
				if b.Range().Contains(d.Date) {
					ms.OccupiedDays++
					ms.Income += d.BasePrice * int64(100-realized[b]) / 100
				}
			}
		}

		if ms.Days > 0 {
			ms.OccupancyPercent = pricing.RoundPercent(int64(ms.OccupiedDays), int64(ms.Days))
		}
		if ms.OccupiedDays > 0 {
			ms.AvgDailyPrice = ms.Income / int64(ms.OccupiedDays)
		}

		ms.BookingCount = len(monthBookings)
		if ms.BookingCount > 0 {
			nights := 0
			for _, b := range monthBookings {
				nights += b.Nights()
			}
			ms.AvgStayLength = float64(nights) / float64(ms.BookingCount)
		}

		stats.Months[i] = ms
		stats.TotalIncome += ms.Income
		stats.TotalOccupiedDays += ms.OccupiedDays
	}

	for _, b := range active {
		if b.CheckinDate.Year() == year || b.CheckoutDate.Year() == year {
			stats.Sources[b.Source]++
			stats.TotalBookings++
		}
	}

	return stats
}

// CalendarSpan диапазон календаря, нужный для статистики года:
// сам год, расширенный до дат бронирований на его границах
func CalendarSpan(year int, bookings []*domain.Booking) domain.DateRange {
	span := domain.DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, b := range bookings {
		r := b.Range()
		if r.Start.Before(span.Start) {
			span.Start = r.Start
		}
		if r.End.After(span.End) {
			span.End = r.End
		}
	}
	return span
}

func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}
