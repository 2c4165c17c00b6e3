package update_calendar

import (
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Request модель запроса на массовое изменение календаря.
// Даты From и To включительно; один день - From == To.
// Nil-поля не изменяются, должно быть задано хотя бы одно.
type Request struct {
	LandlordID int64
	FlatID     int64
	From       time.Time
	To         time.Time
	IsOpen     *bool
	BasePrice  *int64
	MinNights  *int
}

// Response модель ответа: измененные дни календаря
type Response struct {
	FlatID  int64
	From    time.Time
	To      time.Time
	Updated int64 // дней, существующих в календаре и попавших в диапазон
	Days    []*domain.CalendarDay
}
