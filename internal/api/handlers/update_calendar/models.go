package update_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	updateCalendar "github.com/m04kA/SMC-FlatrentService/internal/usecase/update_calendar"
)

// UpdateCalendarRequest HTTP request model. Даты включительно, не заданные поля не меняются.
type UpdateCalendarRequest struct {
	From      string `json:"from" validate:"required"`
	To        string `json:"to" validate:"required"`
	IsOpen    *bool  `json:"isOpen,omitempty"`
	BasePrice *int64 `json:"basePrice,omitempty" validate:"omitempty,gte=0"`
	MinNights *int   `json:"minNights,omitempty" validate:"omitempty,gte=0"`
}

// CalendarDayResponse день календаря
type CalendarDayResponse struct {
	Date      string `json:"date"`
	BasePrice int64  `json:"basePrice"`
	MinNights int    `json:"minNights"`
	IsOpen    bool   `json:"isOpen"`
}

// UpdateCalendarResponse HTTP response model
type UpdateCalendarResponse struct {
	FlatID  int64                 `json:"flatId"`
	From    string                `json:"from"`
	To      string                `json:"to"`
	Updated int64                 `json:"updated"`
	Days    []CalendarDayResponse `json:"days"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateCalendarRequest) ToUseCaseRequest(landlordID, flatID int64) (*updateCalendar.Request, error) {
	from, err := domain.ParseDate(r.From)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}

	to, err := domain.ParseDate(r.To)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	return &updateCalendar.Request{
		LandlordID: landlordID,
		FlatID:     flatID,
		From:       from,
		To:         to,
		IsOpen:     r.IsOpen,
		BasePrice:  r.BasePrice,
		MinNights:  r.MinNights,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateCalendar.Response) *UpdateCalendarResponse {
	out := &UpdateCalendarResponse{
		FlatID:  resp.FlatID,
		From:    resp.From.Format(domain.DateFormat),
		To:      resp.To.Format(domain.DateFormat),
		Updated: resp.Updated,
		Days:    make([]CalendarDayResponse, 0, len(resp.Days)),
	}
	for _, d := range resp.Days {
		out.Days = append(out.Days, CalendarDayResponse{
			Date:      d.Date.Format(domain.DateFormat),
			BasePrice: d.BasePrice,
			MinNights: d.MinNights,
			IsOpen:    d.IsOpen,
		})
	}
	return out
}
