package edit_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	editBooking "github.com/m04kA/SMC-FlatrentService/internal/usecase/edit_booking"
)

// EditBookingRequest HTTP request model. Поля перезаписываются целиком, price без значения сохраняет прежнюю цену.
type EditBookingRequest struct {
	CheckinDate  string  `json:"checkinDate" validate:"required"`
	CheckoutDate string  `json:"checkoutDate" validate:"required"`
	Source       string  `json:"source" validate:"max=45"`
	Price        *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Comment      *string `json:"comment,omitempty" validate:"omitempty,max=300"`
	TenantPhone  string  `json:"tenantPhone" validate:"required,max=20"`
	TenantName   string  `json:"tenantName" validate:"required,max=30"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	FlatID       int64   `json:"flatId"`
	Source       string  `json:"source"`
	Status       string  `json:"status"`
	CheckinDate  string  `json:"checkinDate"`
	CheckoutDate string  `json:"checkoutDate"`
	Nights       int     `json:"nights"`
	Price        int64   `json:"price"`
	Comment      *string `json:"comment,omitempty"`
	TenantPhone  string  `json:"tenantPhone"`
	TenantName   string  `json:"tenantName"`
	BookedAt     string  `json:"bookedAt"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditBookingRequest) ToUseCaseRequest(landlordID, bookingID int64) (*editBooking.Request, error) {
	checkin, err := domain.ParseDate(r.CheckinDate)
	if err != nil {
		return nil, fmt.Errorf("checkinDate: %w", err)
	}

	checkout, err := domain.ParseDate(r.CheckoutDate)
	if err != nil {
		return nil, fmt.Errorf("checkoutDate: %w", err)
	}

	return &editBooking.Request{
		LandlordID:   landlordID,
		BookingID:    bookingID,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		Source:       r.Source,
		Price:        r.Price,
		Comment:      r.Comment,
		TenantPhone:  r.TenantPhone,
		TenantName:   r.TenantName,
		Status:       r.Status,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		FlatID:       resp.FlatID,
		Source:       resp.Source,
		Status:       resp.Status,
		CheckinDate:  resp.CheckinDate.Format(domain.DateFormat),
		CheckoutDate: resp.CheckoutDate.Format(domain.DateFormat),
		Nights:       resp.Nights,
		Price:        resp.Price,
		Comment:      resp.Comment,
		TenantPhone:  resp.TenantPhone,
		TenantName:   resp.TenantName,
		BookedAt:     resp.BookedAt.Format(time.RFC3339),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
