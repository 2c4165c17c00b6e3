package calendar

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/pkg/ptr"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_GetRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rng := domain.MustDateRange(date(3, 1), date(3, 4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT flat_id, day, base_price, min_nights, is_open FROM calendar_days WHERE (flat_id = $1 AND day >= $2 AND day < $3) ORDER BY day ASC")).
		WithArgs(int64(1), rng.Start, rng.End).
		WillReturnRows(sqlmock.NewRows([]string{"flat_id", "day", "base_price", "min_nights", "is_open"}).
			AddRow(int64(1), date(3, 1), int64(1000), 2, true).
			AddRow(int64(1), date(3, 3), int64(1200), 0, false))

	days, err := NewRepository(db).GetRange(context.Background(), 1, rng)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, date(3, 3), days[1].Date)
	assert.False(t, days[1].IsOpen)
	assert.Equal(t, 2, days[0].MinNights)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BulkSetOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rng := domain.MustDateRange(date(3, 1), date(3, 8))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE calendar_days SET is_open = $1 WHERE (flat_id = $2 AND day >= $3 AND day < $4)")).
		WithArgs(false, int64(1), rng.Start, rng.End).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := NewRepository(db).BulkSetOpen(context.Background(), 1, rng, false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BulkSetPriceAndMinNights(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rng := domain.MustDateRange(date(3, 1), date(3, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE calendar_days SET base_price = $1, min_nights = $2 WHERE (flat_id = $3 AND day >= $4 AND day < $5)")).
		WithArgs(int64(2500), 3, int64(1), rng.Start, rng.End).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := NewRepository(db)
	n, err := repo.BulkSetPriceAndMinNights(context.Background(), 1, rng, ptr.Ptr(int64(2500)), ptr.Ptr(3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.BulkSetPriceAndMinNights(context.Background(), 1, rng, nil, nil)
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Seed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rng := domain.MustDateRange(date(3, 1), date(3, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO calendar_days (flat_id,day,base_price,min_nights,is_open) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10) ON CONFLICT (flat_id, day) DO NOTHING")).
		WithArgs(int64(1), date(3, 1), int64(0), 1, true, int64(1), date(3, 2), int64(0), 1, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := NewRepository(db).Seed(context.Background(), 1, rng, domain.CalendarDefaults{MinNights: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "existing day is skipped")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Seed_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO calendar_days").WillReturnError(errors.New("disk full"))

	_, err = NewRepository(db).Seed(context.Background(), 1, domain.MustDateRange(date(3, 1), date(3, 2)), domain.CalendarDefaults{})
	assert.ErrorIs(t, err, ErrExecQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}
