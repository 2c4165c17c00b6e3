package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования.
// Статус не передается: он вычисляется по датам.
type Request struct {
	LandlordID   int64     // ID арендодателя (из заголовка X-Landlord-ID)
	FlatID       int64     // ID квартиры
	CheckinDate  time.Time // Дата заезда
	CheckoutDate time.Time // Дата выезда (не входит в проживание)
	Source       string    // Рекламная площадка
	Price        *int64    // Цена; если не указана, берется расчетная со скидкой
	Comment      *string   // Комментарий (опционально)
	TenantPhone  string    // Телефон гостя
	TenantName   string    // Имя гостя
}

// Response модель ответа с созданным бронированием
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

	// Расчет на момент бронирования
	BasePrice       int64
	DiscountPercent int

	TenantPhone string
	TenantName  string

	BookedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
