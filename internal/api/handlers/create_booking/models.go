package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	createBooking "github.com/m04kA/SMC-FlatrentService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FlatID       int64   `json:"flatId" validate:"required,gt=0"`
	CheckinDate  string  `json:"checkinDate" validate:"required"`  // "2025-03-10"
	CheckoutDate string  `json:"checkoutDate" validate:"required"` // "2025-03-15"
	Source       string  `json:"source" validate:"max=45"`
	Price        *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Comment      *string `json:"comment,omitempty" validate:"omitempty,max=300"`
	TenantPhone  string  `json:"tenantPhone" validate:"required,max=20"`
	TenantName   string  `json:"tenantName" validate:"required,max=30"`

	// Статус при создании вычисляется по датам, поле принимается и игнорируется
	Status *string `json:"status,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	FlatID          int64   `json:"flatId"`
	Source          string  `json:"source"`
	Status          string  `json:"status"`
	CheckinDate     string  `json:"checkinDate"`
	CheckoutDate    string  `json:"checkoutDate"`
	Nights          int     `json:"nights"`
	Price           int64   `json:"price"`
	BasePrice       int64   `json:"basePrice"`
	DiscountPercent int     `json:"discountPercent"`
	Comment         *string `json:"comment,omitempty"`
	TenantPhone     string  `json:"tenantPhone"`
	TenantName      string  `json:"tenantName"`
	BookedAt        string  `json:"bookedAt"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(landlordID int64) (*createBooking.Request, error) {
	checkin, err := domain.ParseDate(r.CheckinDate)
	if err != nil {
		return nil, fmt.Errorf("checkinDate: %w", err)
	}

	checkout, err := domain.ParseDate(r.CheckoutDate)
	if err != nil {
		return nil, fmt.Errorf("checkoutDate: %w", err)
	}

	return &createBooking.Request{
		LandlordID:   landlordID,
		FlatID:       r.FlatID,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		Source:       r.Source,
		Price:        r.Price,
		Comment:      r.Comment,
		TenantPhone:  r.TenantPhone,
		TenantName:   r.TenantName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		FlatID:          resp.FlatID,
		Source:          resp.Source,
		Status:          resp.Status,
		CheckinDate:     resp.CheckinDate.Format(domain.DateFormat),
		CheckoutDate:    resp.CheckoutDate.Format(domain.DateFormat),
		Nights:          resp.Nights,
		Price:           resp.Price,
		BasePrice:       resp.BasePrice,
		DiscountPercent: resp.DiscountPercent,
		Comment:         resp.Comment,
		TenantPhone:     resp.TenantPhone,
		TenantName:      resp.TenantName,
		BookedAt:        resp.BookedAt.Format(time.RFC3339),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
