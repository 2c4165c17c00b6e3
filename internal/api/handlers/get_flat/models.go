package get_flat

import (
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// FlatResponse HTTP response model
type FlatResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	LinkSites   *string `json:"linkSites,omitempty"`
	LinkTenants *string `json:"linkTenants,omitempty"`
	Comment     *string `json:"comment,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// FromDomainFlat конвертирует квартиру в HTTP response
func FromDomainFlat(f *domain.Flat) *FlatResponse {
	return &FlatResponse{
		ID:          f.ID,
		Name:        f.Name,
		Address:     f.Address,
		LinkSites:   f.LinkSites,
		LinkTenants: f.LinkTenants,
		Comment:     f.Comment,
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   f.UpdatedAt.Format(time.RFC3339),
	}
}
