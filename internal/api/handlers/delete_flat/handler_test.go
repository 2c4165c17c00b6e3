package delete_flat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/service/flats"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

type fakeService struct{}

func (fakeService) Delete(_ context.Context, id, _ int64) error {
	switch id {
	case 2:
		return flats.ErrAccessDenied
	case 3:
		return flats.ErrFlatNotFound
	}
	return nil
}

func TestHandler(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/flats/{flatId}", NewHandler(fakeService{}, logger.Nop()).Handle)

	serve := func(path string, landlord bool) int {
		r := httptest.NewRequest(http.MethodDelete, path, nil)
		if landlord {
			r = r.WithContext(middleware.WithLandlordID(r.Context(), 7))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, serve("/flats/1", true))
	assert.Equal(t, http.StatusForbidden, serve("/flats/2", true))
	assert.Equal(t, http.StatusNotFound, serve("/flats/3", true))
	assert.Equal(t, http.StatusUnauthorized, serve("/flats/1", false))
}
