package get_calendar

import (
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// CalendarDayResponse день календаря
type CalendarDayResponse struct {
	Date      string `json:"date"`
	BasePrice int64  `json:"basePrice"`
	MinNights int    `json:"minNights"`
	IsOpen    bool   `json:"isOpen"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	FlatID int64                 `json:"flatId"`
	Days   []CalendarDayResponse `json:"days"`
}

// FromDomainDays конвертирует дни календаря в HTTP response
func FromDomainDays(flatID int64, days []*domain.CalendarDay) *CalendarResponse {
	resp := &CalendarResponse{
		FlatID: flatID,
		Days:   make([]CalendarDayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, CalendarDayResponse{
			Date:      d.Date.Format(domain.DateFormat),
			BasePrice: d.BasePrice,
			MinNights: d.MinNights,
			IsOpen:    d.IsOpen,
		})
	}
	return resp
}
