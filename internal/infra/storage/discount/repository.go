package discount

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-FlatrentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FlatrentService/pkg/psqlbuilder"
)

// Repository репозиторий уровней скидок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория скидок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListTiers возвращает уровни скидок квартиры по возрастанию порога
func (r *Repository) ListTiers(ctx context.Context, flatID int64) ([]*domain.DiscountTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"flat_id",
		"nights_threshold",
		"discount_percent",
	).
		From("discount_tiers").
		Where(squirrel.Eq{"flat_id": flatID}).
		OrderBy("nights_threshold ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTiers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTiers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tiers := make([]*domain.DiscountTier, 0)
	for rows.Next() {
		var t domain.DiscountTier
		if err := rows.Scan(&t.ID, &t.FlatID, &t.NightsThreshold, &t.DiscountPercent); err != nil {
			return nil, fmt.Errorf("%w: ListTiers - scan tier: %v", ErrScanRow, err)
		}
		tiers = append(tiers, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTiers - rows error: %v", ErrScanRow, err)
	}

	return tiers, nil
}

// ReplaceTiers заменяет все уровни скидок квартиры.
// Должен вызываться внутри транзакции: удаление и вставка применяются вместе.
func (r *Repository) ReplaceTiers(ctx context.Context, flatID int64, tiers []*domain.DiscountTier) ([]*domain.DiscountTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("discount_tiers").
		Where(squirrel.Eq{"flat_id": flatID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceTiers - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceTiers - execute delete: %v", ErrExecQuery, err)
	}

	if len(tiers) == 0 {
		return []*domain.DiscountTier{}, nil
	}

	builder := psqlbuilder.Insert("discount_tiers").
		Columns("flat_id", "nights_threshold", "discount_percent").
		Suffix("RETURNING id")

	for _, t := range tiers {
		builder = builder.Values(flatID, t.NightsThreshold, t.DiscountPercent)
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceTiers - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerr.Is(err, pgerr.UniqueViolation) {
			return nil, ErrDuplicateTier
		}
		return nil, fmt.Errorf("%w: ReplaceTiers - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	saved := make([]*domain.DiscountTier, 0, len(tiers))
	for i := 0; rows.Next(); i++ {
		if i >= len(tiers) {
			return nil, fmt.Errorf("%w: ReplaceTiers - more ids than tiers", ErrScanRow)
		}
		t := &domain.DiscountTier{
			FlatID:          flatID,
			NightsThreshold: tiers[i].NightsThreshold,
			DiscountPercent: tiers[i].DiscountPercent,
		}
		if err := rows.Scan(&t.ID); err != nil {
			return nil, fmt.Errorf("%w: ReplaceTiers - scan id: %v", ErrScanRow, err)
		}
		saved = append(saved, t)
	}

	if err := rows.Err(); err != nil {
		if pgerr.Is(err, pgerr.UniqueViolation) {
			return nil, ErrDuplicateTier
		}
		return nil, fmt.Errorf("%w: ReplaceTiers - rows error: %v", ErrScanRow, err)
	}

	domain.SortTiers(saved)
	return saved, nil
}
