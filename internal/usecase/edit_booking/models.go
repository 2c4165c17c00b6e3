package edit_booking

import (
	"time"
)

// Request модель запроса на изменение бронирования.
// Квартиру бронирования изменить нельзя.
type Request struct {
	LandlordID   int64
	BookingID    int64
	CheckinDate  time.Time
	CheckoutDate time.Time
	Source       string
	Price        *int64  // если не указана, сохраняется прежняя цена
	Comment      *string // перезаписывается как есть, nil очищает комментарий
	TenantPhone  string
	TenantName   string
	Status       *string // запрошенный статус (опционально)
}

// CancelRequest модель запроса на отмену бронирования
type CancelRequest struct {
	LandlordID int64
	BookingID  int64
}

// Response модель ответа с измененным бронированием
type Response struct {
	ID           int64
	FlatID       int64
	Source       string
	Status       string
	CheckinDate  time.Time
	CheckoutDate time.Time
	Nights       int
	Price        int64
	Comment      *string
	TenantPhone  string
	TenantName   string
	BookedAt     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
