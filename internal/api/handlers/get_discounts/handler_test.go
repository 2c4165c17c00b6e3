package get_discounts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/service/discounts"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

type fakeService struct{}

func (fakeService) List(_ context.Context, _, flatID int64) ([]*domain.DiscountTier, error) {
	switch flatID {
	case 1:
		return []*domain.DiscountTier{{FlatID: 1, NightsThreshold: 7, DiscountPercent: 5}}, nil
	case 2:
		return nil, nil
	case 3:
		return nil, discounts.ErrAccessDenied
	}
	return nil, discounts.ErrFlatNotFound
}

func TestHandler(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/flats/{flatId}/discounts", NewHandler(fakeService{}, logger.Nop()).Handle)

	serve := func(path string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		r = r.WithContext(middleware.WithLandlordID(r.Context(), 7))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return w
	}

	w := serve("/flats/1/discounts")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flatId":1,"tiers":[{"nightsThreshold":7,"discountPercent":5}]}`, w.Body.String())

	w = serve("/flats/2/discounts")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flatId":2,"tiers":[]}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, serve("/flats/3/discounts").Code)
	assert.Equal(t, http.StatusNotFound, serve("/flats/4/discounts").Code)
}
