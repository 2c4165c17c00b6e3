package delete_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/service/bookings"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

type fakeService struct {
	deleted []int64
}

func (f *fakeService) Delete(_ context.Context, id, landlordID int64) error {
	switch id {
	case 2:
		return bookings.ErrAccessDenied
	case 3:
		return bookings.ErrBookingNotFound
	case 4:
		return errors.New("boom")
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestHandler(t *testing.T) {
	svc := &fakeService{}
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	serve := func(path string) int {
		r := httptest.NewRequest(http.MethodDelete, path, nil)
		r = r.WithContext(middleware.WithLandlordID(r.Context(), 7))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, serve("/bookings/1"))
	assert.Equal(t, []int64{1}, svc.deleted)
	assert.Equal(t, http.StatusForbidden, serve("/bookings/2"))
	assert.Equal(t, http.StatusNotFound, serve("/bookings/3"))
	assert.Equal(t, http.StatusInternalServerError, serve("/bookings/4"))
}
