package create_flat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	createFlat "github.com/m04kA/SMC-FlatrentService/internal/usecase/create_flat"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

type fakeUseCase struct {
	execute func(ctx context.Context, req *createFlat.Request) (*createFlat.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createFlat.Request) (*createFlat.Response, error) {
	return f.execute(ctx, req)
}

func serve(uc CreateFlatUseCase, body string, withLandlord bool) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/flats", strings.NewReader(body))
	if withLandlord {
		r = r.WithContext(middleware.WithLandlordID(r.Context(), 7))
	}
	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, r)
	return w
}

func TestHandler(t *testing.T) {
	uc := &fakeUseCase{execute: func(_ context.Context, req *createFlat.Request) (*createFlat.Response, error) {
		assert.Equal(t, int64(7), req.LandlordID)
		return &createFlat.Response{
			ID: 1, LandlordID: req.LandlordID, Name: req.Name, Address: req.Address,
			CalendarFrom: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			CalendarTo:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			DaysSeeded:   394,
		}, nil
	}}

	w := serve(uc, `{"name":"Студия","address":"Невский 1"}`, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp FlatResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "2025-02-15", resp.CalendarFrom)
	assert.Equal(t, "2026-03-15", resp.CalendarTo)
	assert.Equal(t, int64(394), resp.DaysSeeded)

	assert.Equal(t, http.StatusUnauthorized, serve(uc, `{"name":"Студия","address":"Невский 1"}`, false).Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, `{"name":"Студия"}`, true).Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, `{"name":"Студия","address":"Невский 1","linkSites":"not a url"}`, true).Code)
}
