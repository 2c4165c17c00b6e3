package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-FlatrentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FlatrentService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"flat_id",
	"source",
	"status",
	"checkin_date",
	"checkout_date",
	"price",
	"comment",
	"tenant_phone",
	"booked_at",
	"created_at",
	"updated_at",
}

// rowScanner *sql.Row или *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Пересечение с активным бронированием отклоняется ограничением исключения в БД (ErrDateConflict).
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"flat_id",
			"source",
			"status",
			"checkin_date",
			"checkout_date",
			"price",
			"comment",
			"tenant_phone",
			"booked_at",
		).
		Values(
			booking.FlatID,
			booking.Source,
			booking.Status,
			domain.DateOnly(booking.CheckinDate),
			domain.DateOnly(booking.CheckoutDate),
			booking.Price,
			booking.Comment,
			booking.TenantPhone,
			booking.BookedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// FindOverlapping получает не отмененные бронирования квартиры, пересекающие [start, end).
// excludeID исключает редактируемое бронирование.
// Внутри транзакции на запись строки блокируются (FOR UPDATE) до ее завершения.
func (r *Repository) FindOverlapping(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	builder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"flat_id": flatID}).
		Where(squirrel.NotEq{"status": inactive}).
		Where(squirrel.Lt{"checkin_date": rng.End}).
		Where(squirrel.Gt{"checkout_date": rng.Start})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	builder = builder.OrderBy("checkin_date ASC")

	if dbmetrics.CanLockRows(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByFlatAndYear получает бронирования квартиры (включая отмененные),
// у которых дата заезда или выезда приходится на год
func (r *Repository) ListByFlatAndYear(ctx context.Context, flatID int64, year int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	query, args, err := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"flat_id": flatID}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"checkin_date": yearStart},
				squirrel.Lt{"checkin_date": yearEnd},
			},
			squirrel.And{
				squirrel.GtOrEq{"checkout_date": yearStart},
				squirrel.Lt{"checkout_date": yearEnd},
			},
		}).
		OrderBy("checkin_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByFlatAndYear - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFlatAndYear - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update перезаписывает изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("source", booking.Source).
		Set("status", booking.Status).
		Set("checkin_date", domain.DateOnly(booking.CheckinDate)).
		Set("checkout_date", domain.DateOnly(booking.CheckoutDate)).
		Set("price", booking.Price).
		Set("comment", booking.Comment).
		Set("tenant_phone", booking.TenantPhone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, mapWriteError("Update", err)
	}

	return booking, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("UpdateStatus", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление, не переход статуса)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// mapWriteError переводит нарушения ограничений PostgreSQL в ошибки репозитория
func mapWriteError(op string, err error) error {
	switch pgerr.Code(err) {
	case pgerr.ExclusionViolation:
		return ErrDateConflict
	case pgerr.ForeignKeyViolation:
		return ErrReferenceNotFound
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.FlatID,
		&booking.Source,
		&booking.Status,
		&booking.CheckinDate,
		&booking.CheckoutDate,
		&booking.Price,
		&booking.Comment,
		&booking.TenantPhone,
		&booking.BookedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CheckinDate = domain.DateOnly(booking.CheckinDate)
	booking.CheckoutDate = domain.DateOnly(booking.CheckoutDate)

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
