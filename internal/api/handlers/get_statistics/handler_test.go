package get_statistics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/service/statistics"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

type fakeService struct{}

func (fakeService) GetYearStats(_ context.Context, _, flatID int64, year int) (*domain.YearStats, error) {
	if year < 1970 {
		return nil, statistics.ErrInvalidYear
	}
	if flatID == 2 {
		return nil, statistics.ErrFlatNotFound
	}
	stats := &domain.YearStats{FlatID: flatID, Year: year, Sources: map[string]int{"avito": 2}, TotalIncome: 9000}
	for i := range stats.Months {
		stats.Months[i].Month = time.Month(i + 1)
	}
	stats.Months[2].Income = 9000
	stats.Months[2].OccupancyPercent = 29
	return stats, nil
}

func serve(path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/flats/{flatId}/statistics", NewHandler(fakeService{}, logger.Nop()).Handle)

	r := httptest.NewRequest(http.MethodGet, path, nil)
	r = r.WithContext(middleware.WithLandlordID(r.Context(), 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandler(t *testing.T) {
	w := serve("/flats/1/statistics?year=2025")
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatisticsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Months, 12)
	assert.Equal(t, 3, resp.Months[2].Month)
	assert.Equal(t, int64(9000), resp.Months[2].Income)
	assert.Equal(t, 2, resp.Sources["avito"])

	assert.Equal(t, http.StatusBadRequest, serve("/flats/1/statistics?year=1500").Code)
	assert.Equal(t, http.StatusBadRequest, serve("/flats/1/statistics?year=x").Code)
	assert.Equal(t, http.StatusNotFound, serve("/flats/2/statistics?year=2025").Code)
}
