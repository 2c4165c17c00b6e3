package tenant

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

// Repository репозиторий гостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByPhone ищет гостя по телефону
func (r *Repository) FindByPhone(ctx context.Context, phone string) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("phone", "name").
		From("tenants").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Tenant
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.Phone, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - scan tenant: %v", ErrScanRow, err)
	}

	return &t, nil
}

// Upsert создает гостя или перезаписывает имя существующего (побеждает последняя запись)
func (r *Repository) Upsert(ctx context.Context, tenant *domain.Tenant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenants").
		Columns("phone", "name").
		Values(tenant.Phone, tenant.Name).
		Suffix("ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
