package calendar

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-FlatrentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FlatrentService/pkg/psqlbuilder"
)

// seedBatchDays дней в одном INSERT при заполнении календаря (5 параметров на день)
const seedBatchDays = 1000

// Repository репозиторий календаря квартир
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRange возвращает дни календаря квартиры в [start, end), упорядоченные по дате.
// Дней, которых нет в таблице, в результате нет.
func (r *Repository) GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"flat_id",
		"day",
		"base_price",
		"min_nights",
		"is_open",
	).
		From("calendar_days").
		Where(rangeFilter(flatID, rng)).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.CalendarDay, 0, rng.Nights())
	for rows.Next() {
		var d domain.CalendarDay
		if err := rows.Scan(&d.FlatID, &d.Date, &d.BasePrice, &d.MinNights, &d.IsOpen); err != nil {
			return nil, fmt.Errorf("%w: GetRange - scan day: %v", ErrScanRow, err)
		}
		d.Date = domain.DateOnly(d.Date)
		days = append(days, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRange - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// BulkSetOpen открывает или закрывает все дни диапазона одним запросом.
// Возвращает количество измененных дней.
func (r *Repository) BulkSetOpen(ctx context.Context, flatID int64, rng domain.DateRange, isOpen bool) (int64, error) {
	return r.update(ctx, "BulkSetOpen", psqlbuilder.Update("calendar_days").
		Set("is_open", isOpen).
		Where(rangeFilter(flatID, rng)))
}

// BulkSetPriceAndMinNights задает цену и/или минимальный срок всем дням диапазона.
// nil поле не изменяется.
func (r *Repository) BulkSetPriceAndMinNights(ctx context.Context, flatID int64, rng domain.DateRange, basePrice *int64, minNights *int) (int64, error) {
	if basePrice == nil && minNights == nil {
		return 0, ErrNothingToUpdate
	}

	builder := psqlbuilder.Update("calendar_days").Where(rangeFilter(flatID, rng))
	if basePrice != nil {
		builder = builder.Set("base_price", *basePrice)
	}
	if minNights != nil {
		builder = builder.Set("min_nights", *minNights)
	}

	return r.update(ctx, "BulkSetPriceAndMinNights", builder)
}

// Seed создает недостающие дни диапазона с ценой и минимальным сроком по умолчанию.
// Существующие дни не изменяются, поэтому повторный вызов безопасен.
// Возвращает количество созданных дней.
func (r *Repository) Seed(ctx context.Context, flatID int64, rng domain.DateRange, defaults domain.CalendarDefaults) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	days := rng.Days()

	var created int64
	for start := 0; start < len(days); start += seedBatchDays {
		end := start + seedBatchDays
		if end > len(days) {
			end = len(days)
		}

		builder := psqlbuilder.Insert("calendar_days").
			Columns("flat_id", "day", "base_price", "min_nights", "is_open").
			Suffix("ON CONFLICT (flat_id, day) DO NOTHING")

		for _, day := range days[start:end] {
			builder = builder.Values(flatID, day, defaults.BasePrice, defaults.MinNights, true)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return created, fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			if pgerr.Is(err, pgerr.ForeignKeyViolation) {
				return created, ErrFlatNotFound
			}
			return created, fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return created, fmt.Errorf("%w: Seed - get rows affected: %v", ErrExecQuery, err)
		}
		created += n
	}

	return created, nil
}

func (r *Repository) update(ctx context.Context, op string, builder squirrel.UpdateBuilder) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return n, nil
}

func rangeFilter(flatID int64, rng domain.DateRange) squirrel.And {
	return squirrel.And{
		squirrel.Eq{"flat_id": flatID},
		squirrel.GtOrEq{"day": rng.Start},
		squirrel.Lt{"day": rng.End},
	}
}
