package flat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FlatrentService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"landlord_id",
	"name",
	"address",
	"link_sites",
	"link_tenants",
	"comment",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с квартирами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория квартир
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает квартиру
func (r *Repository) Create(ctx context.Context, flat *domain.Flat) (*domain.Flat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("flats").
		Columns(
			"landlord_id",
			"name",
			"address",
			"link_sites",
			"link_tenants",
			"comment",
		).
		Values(
			flat.LandlordID,
			flat.Name,
			flat.Address,
			flat.LinkSites,
			flat.LinkTenants,
			flat.Comment,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&flat.ID,
		&flat.CreatedAt,
		&flat.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return flat, nil
}

// GetByID получает квартиру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Flat, error) {
	return r.get(ctx, id, false)
}

// LockForUpdate получает квартиру и блокирует ее строку до конца транзакции.
// Все записи бронирований и календаря квартиры сериализуются этой блокировкой.
// Вне транзакции на запись работает как GetByID.
func (r *Repository) LockForUpdate(ctx context.Context, id int64) (*domain.Flat, error) {
	return r.get(ctx, id, dbmetrics.CanLockRows(ctx))
}

func (r *Repository) get(ctx context.Context, id int64, forUpdate bool) (*domain.Flat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("flats").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var flat domain.Flat
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&flat.ID,
		&flat.LandlordID,
		&flat.Name,
		&flat.Address,
		&flat.LinkSites,
		&flat.LinkTenants,
		&flat.Comment,
		&flat.CreatedAt,
		&flat.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFlatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan flat: %v", ErrScanRow, err)
	}

	return &flat, nil
}

// ListIDs возвращает идентификаторы всех квартир
// Используется фоновым продлением календаря
func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("flats").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListIDs - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// Delete удаляет квартиру вместе с календарем, скидками и бронированиями (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("flats").
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
		return ErrFlatNotFound
	}

	return nil
}
