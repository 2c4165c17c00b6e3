package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListFlatBookingsRequest запрос на получение бронирований квартиры за год
type ListFlatBookingsRequest struct {
	LandlordID int64   `json:"landlordId"`
	FlatID     int64   `json:"flatId"`
	Year       int     `json:"year"`
	Status     *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	FlatID       int64  `json:"flatId"`
	Source       string `json:"source"`
	Status       string `json:"status"`
	CheckinDate  string `json:"checkinDate"`  // "2025-03-10"
	CheckoutDate string `json:"checkoutDate"` // "2025-03-15"
	Nights       int    `json:"nights"`
	Price        int64  `json:"price"`

	// Скидка относительно текущих базовых цен календаря
	RealizedDiscount int `json:"realizedDiscount"`

	Comment     *string `json:"comment,omitempty"`
	TenantPhone string  `json:"tenantPhone"`
	TenantName  string  `json:"tenantName,omitempty"`

	BookedAt  time.Time `json:"bookedAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, tenantName string, realizedDiscount int) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:               b.ID,
		FlatID:           b.FlatID,
		Source:           b.Source,
		Status:           string(b.Status),
		CheckinDate:      b.CheckinDate.Format(domain.DateFormat),
		CheckoutDate:     b.CheckoutDate.Format(domain.DateFormat),
		Nights:           b.Nights(),
		Price:            b.Price,
		RealizedDiscount: realizedDiscount,
		Comment:          b.Comment,
		TenantPhone:      b.TenantPhone,
		TenantName:       tenantName,
		BookedAt:         b.BookedAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
