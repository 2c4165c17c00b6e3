package domain

import "time"

// Flat is a rentable unit owned by a landlord.
// It exclusively owns its calendar days and discount tiers.
type Flat struct {
	ID          int64
	LandlordID  int64
	Name        string
	Address     string
	LinkSites   *string // ссылка на объявление на площадках
	LinkTenants *string // ссылка для гостей
	Comment     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy returns true if the flat belongs to the landlord
func (f *Flat) IsOwnedBy(landlordID int64) bool {
	return f.LandlordID == landlordID
}
