package get_quote

import "time"

// Request модель запроса расчета стоимости проживания
type Request struct {
	LandlordID   int64
	FlatID       int64
	CheckinDate  time.Time
	CheckoutDate time.Time
}

// Response расчет стоимости и признаки, с которыми бронирование будет принято
type Response struct {
	FlatID          int64
	CheckinDate     time.Time
	CheckoutDate    time.Time
	Nights          int
	BasePrice       int64
	DiscountPercent int
	Total           int64

	Available bool // даты свободны и открыты
	MinNights int  // минимальный срок дня заезда
	MeetsMin  bool // Nights >= MinNights
}
