package set_discounts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	setDiscounts "github.com/m04kA/SMC-FlatrentService/internal/usecase/set_discounts"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

type fakeUseCase struct {
	execute func(ctx context.Context, req *setDiscounts.Request) (*setDiscounts.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *setDiscounts.Request) (*setDiscounts.Response, error) {
	return f.execute(ctx, req)
}

func serve(uc SetDiscountsUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/flats/{flatId}/discounts", NewHandler(uc, logger.Nop()).Handle)

	r := httptest.NewRequest(http.MethodPut, "/flats/3/discounts", strings.NewReader(body))
	r = r.WithContext(middleware.WithLandlordID(r.Context(), 7))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandler(t *testing.T) {
	uc := &fakeUseCase{execute: func(_ context.Context, req *setDiscounts.Request) (*setDiscounts.Response, error) {
		if len(req.Tiers) == 2 && req.Tiers[0].NightsThreshold == req.Tiers[1].NightsThreshold {
			return nil, fmt.Errorf("%w: duplicate threshold", domain.ErrInvalidDiscountConfig)
		}
		out := &setDiscounts.Response{FlatID: req.FlatID}
		for _, tier := range req.Tiers {
			out.Tiers = append(out.Tiers, &domain.DiscountTier{
				FlatID: req.FlatID, NightsThreshold: tier.NightsThreshold, DiscountPercent: tier.DiscountPercent,
			})
		}
		return out, nil
	}}

	w := serve(uc, `{"tiers":[{"nightsThreshold":7,"discountPercent":5},{"nightsThreshold":28,"discountPercent":15}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp DiscountsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Tiers, 2)
	assert.Equal(t, 15, resp.Tiers[1].DiscountPercent)

	w = serve(uc, `{"tiers":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tiers":[]`)

	w = serve(uc, `{"tiers":[{"nightsThreshold":7,"discountPercent":5},{"nightsThreshold":7,"discountPercent":10}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
