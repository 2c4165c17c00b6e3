package create_flat

import (
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	createFlat "github.com/m04kA/SMC-FlatrentService/internal/usecase/create_flat"
)

// CreateFlatRequest HTTP request model
type CreateFlatRequest struct {
	Name        string  `json:"name" validate:"required,max=45"`
	Address     string  `json:"address" validate:"required,max=100"`
	LinkSites   *string `json:"linkSites,omitempty" validate:"omitempty,url"`
	LinkTenants *string `json:"linkTenants,omitempty" validate:"omitempty,url"`
	Comment     *string `json:"comment,omitempty" validate:"omitempty,max=300"`
}

// FlatResponse HTTP response model
type FlatResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	LinkSites    *string `json:"linkSites,omitempty"`
	LinkTenants  *string `json:"linkTenants,omitempty"`
	Comment      *string `json:"comment,omitempty"`
	CalendarFrom string  `json:"calendarFrom"`
	CalendarTo   string  `json:"calendarTo"` // последний день календаря включительно
	DaysSeeded   int64   `json:"daysSeeded"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateFlatRequest) ToUseCaseRequest(landlordID int64) *createFlat.Request {
	return &createFlat.Request{
		LandlordID:  landlordID,
		Name:        r.Name,
		Address:     r.Address,
		LinkSites:   r.LinkSites,
		LinkTenants: r.LinkTenants,
		Comment:     r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createFlat.Response) *FlatResponse {
	return &FlatResponse{
		ID:           resp.ID,
		Name:         resp.Name,
		Address:      resp.Address,
		LinkSites:    resp.LinkSites,
		LinkTenants:  resp.LinkTenants,
		Comment:      resp.Comment,
		CalendarFrom: resp.CalendarFrom.Format(domain.DateFormat),
		CalendarTo:   domain.AddDays(resp.CalendarTo, -1).Format(domain.DateFormat),
		DaysSeeded:   resp.DaysSeeded,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
