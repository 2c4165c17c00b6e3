package get_quote

import (
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	getQuote "github.com/m04kA/SMC-FlatrentService/internal/usecase/get_quote"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	FlatID          int64  `json:"flatId"`
	CheckinDate     string `json:"checkinDate"`
	CheckoutDate    string `json:"checkoutDate"`
	Nights          int    `json:"nights"`
	BasePrice       int64  `json:"basePrice"`
	DiscountPercent int    `json:"discountPercent"`
	Total           int64  `json:"total"`
	Available       bool   `json:"available"`
	MinNights       int    `json:"minNights"`
	MeetsMinNights  bool   `json:"meetsMinNights"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		FlatID:          resp.FlatID,
		CheckinDate:     resp.CheckinDate.Format(domain.DateFormat),
		CheckoutDate:    resp.CheckoutDate.Format(domain.DateFormat),
		Nights:          resp.Nights,
		BasePrice:       resp.BasePrice,
		DiscountPercent: resp.DiscountPercent,
		Total:           resp.Total,
		Available:       resp.Available,
		MinNights:       resp.MinNights,
		MeetsMinNights:  resp.MeetsMin,
	}
}
