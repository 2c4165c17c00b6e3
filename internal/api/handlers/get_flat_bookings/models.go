package get_flat_bookings

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-FlatrentService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Без year используется defaultYear.
func ToServiceRequest(flatID, landlordID int64, yearStr, statusStr string, defaultYear int) (*models.ListFlatBookingsRequest, error) {
	req := &models.ListFlatBookingsRequest{
		LandlordID: landlordID,
		FlatID:     flatID,
		Year:       defaultYear,
	}

	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("invalid year: %w", err)
		}
		req.Year = year
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
