package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

func statusPtr(s BookingStatus) *BookingStatus { return &s }

func TestStatusByDates(t *testing.T) {
	tests := []struct {
		name     string
		checkin  time.Time
		checkout time.Time
		want     BookingStatus
	}{
		{"past stay", AddDays(today, -5), AddDays(today, -1), StatusCompleted},
		{"checkout today", AddDays(today, -3), today, StatusCompleted},
		{"in progress", AddDays(today, -2), AddDays(today, 3), StatusInProgress},
		{"checkin today", today, AddDays(today, 2), StatusInProgress},
		{"future stay", AddDays(today, 1), AddDays(today, 5), StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusByDates(tt.checkin, tt.checkout, today))
		})
	}
}

func TestStatusByDates_IgnoresClock(t *testing.T) {
	lateEvening := time.Date(2025, 3, 20, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, StatusInProgress, StatusByDates(today, AddDays(today, 1), lateEvening))
}

func TestResolveStatus(t *testing.T) {
	checkin, checkout := AddDays(today, 1), AddDays(today, 5)

	t.Run("no request recomputes from dates", func(t *testing.T) {
		got, err := ResolveStatus(StatusCompleted, nil, checkin, checkout, today)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, got)
	})

	t.Run("cancel from pending", func(t *testing.T) {
		got, err := ResolveStatus(StatusPending, statusPtr(StatusCancelled), checkin, checkout, today)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got)
	})

	t.Run("cancel from in progress ignores dates", func(t *testing.T) {
		got, err := ResolveStatus(StatusInProgress, statusPtr(StatusCancelled), AddDays(today, -1), checkout, today)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got)
	})

	t.Run("cancelled stays cancelled on plain edit", func(t *testing.T) {
		got, err := ResolveStatus(StatusCancelled, nil, checkin, checkout, today)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got)
	})

	t.Run("cancelled rejects reactivation", func(t *testing.T) {
		_, err := ResolveStatus(StatusCancelled, statusPtr(StatusPending), checkin, checkout, today)
		assert.ErrorIs(t, err, ErrStatusTransition)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		_, err := ResolveStatus(StatusCompleted, statusPtr(StatusCancelled), checkin, checkout, today)
		assert.ErrorIs(t, err, ErrStatusTransition)
	})

	t.Run("pending cannot jump to in progress manually", func(t *testing.T) {
		_, err := ResolveStatus(StatusPending, statusPtr(StatusInProgress), checkin, checkout, today)
		assert.ErrorIs(t, err, ErrStatusTransition)
	})

	t.Run("confirming the current status re-enters the date rule", func(t *testing.T) {
		got, err := ResolveStatus(StatusInProgress, statusPtr(StatusInProgress), AddDays(today, -4), AddDays(today, -1), today)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, got)
	})
}

func TestCanRequestStatus(t *testing.T) {
	assert.True(t, CanRequestStatus(StatusPending, StatusCancelled))
	assert.True(t, CanRequestStatus(StatusCancelled, StatusCancelled))
	assert.True(t, CanRequestStatus(StatusInProgress, StatusInProgress))
	assert.True(t, CanRequestStatus(StatusCompleted, StatusCompleted))
	assert.False(t, CanRequestStatus(StatusCompleted, StatusPending))
	assert.False(t, CanRequestStatus(StatusCancelled, StatusInProgress))
	assert.False(t, CanRequestStatus(BookingStatus("unknown"), StatusCancelled))
}
