package get_statistics

import "github.com/m04kA/SMC-FlatrentService/internal/domain"

// MonthResponse показатели месяца
type MonthResponse struct {
	Month            int     `json:"month"`
	Days             int     `json:"days"`
	OccupiedDays     int     `json:"occupiedDays"`
	OccupancyPercent int     `json:"occupancyPercent"`
	Income           int64   `json:"income"`
	AvgDailyPrice    int64   `json:"avgDailyPrice"`
	BookingCount     int     `json:"bookingCount"`
	AvgStayLength    float64 `json:"avgStayLength"`
	Elapsed          bool    `json:"elapsed"`
}

// StatisticsResponse HTTP response model
type StatisticsResponse struct {
	FlatID            int64           `json:"flatId"`
	Year              int             `json:"year"`
	Months            []MonthResponse `json:"months"`
	Sources           map[string]int  `json:"sources"`
	TotalIncome       int64           `json:"totalIncome"`
	TotalOccupiedDays int             `json:"totalOccupiedDays"`
	TotalBookings     int             `json:"totalBookings"`
}

// FromDomainStats конвертирует статистику в HTTP response
func FromDomainStats(s *domain.YearStats) *StatisticsResponse {
	resp := &StatisticsResponse{
		FlatID:            s.FlatID,
		Year:              s.Year,
		Months:            make([]MonthResponse, 0, len(s.Months)),
		Sources:           s.Sources,
		TotalIncome:       s.TotalIncome,
		TotalOccupiedDays: s.TotalOccupiedDays,
		TotalBookings:     s.TotalBookings,
	}
	if resp.Sources == nil {
		resp.Sources = map[string]int{}
	}

	for _, m := range s.Months {
		resp.Months = append(resp.Months, MonthResponse{
			Month:            int(m.Month),
			Days:             m.Days,
			OccupiedDays:     m.OccupiedDays,
			OccupancyPercent: m.OccupancyPercent,
			Income:           m.Income,
			AvgDailyPrice:    m.AvgDailyPrice,
			BookingCount:     m.BookingCount,
			AvgStayLength:    m.AvgStayLength,
			Elapsed:          m.Elapsed,
		})
	}
	return resp
}
