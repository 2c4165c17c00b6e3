package pricing

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Engine рассчитывает стоимость проживания по календарю и скидкам квартиры
type Engine struct {
	calendarRepo CalendarRepository
	discountRepo DiscountRepository
	logger       Logger
}

// NewEngine создает новый экземпляр движка цен
func NewEngine(
	calendarRepo CalendarRepository,
	discountRepo DiscountRepository,
	logger Logger,
) *Engine {
	return &Engine{
		calendarRepo: calendarRepo,
		discountRepo: discountRepo,
		logger:       logger,
	}
}

// BasePrice сумма базовых цен за [start, end)
func (e *Engine) BasePrice(ctx context.Context, flatID int64, rng domain.DateRange) (int64, error) {
	days, err := e.calendarRepo.GetRange(ctx, flatID, rng)
	if err != nil {
		e.logger.Error("BasePrice: failed to get calendar for flat=%d %s: %v", flatID, rng, err)
		return 0, fmt.Errorf("%w: get calendar: %v", ErrInternal, err)
	}
	return SumBasePrice(days, rng), nil
}

// BestDiscount процент скидки для длительности диапазона, 0 если ни один уровень не подходит
func (e *Engine) BestDiscount(ctx context.Context, flatID int64, rng domain.DateRange) (int, error) {
	tiers, err := e.discountRepo.ListTiers(ctx, flatID)
	if err != nil {
		e.logger.Error("BestDiscount: failed to list tiers for flat=%d: %v", flatID, err)
		return 0, fmt.Errorf("%w: list discount tiers: %v", ErrInternal, err)
	}
	return SelectDiscount(tiers, rng.Nights()), nil
}

// QuotedPrice цена проживания с лучшей скидкой
func (e *Engine) QuotedPrice(ctx context.Context, flatID int64, rng domain.DateRange) (int64, error) {
	q, err := e.Quote(ctx, flatID, rng)
	if err != nil {
		return 0, err
	}
	return q.Total, nil
}

// Quote полный расчет: ночи, базовая цена, скидка, итог
func (e *Engine) Quote(ctx context.Context, flatID int64, rng domain.DateRange) (*Quote, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	base, err := e.BasePrice(ctx, flatID, rng)
	if err != nil {
		return nil, err
	}

	discount, err := e.BestDiscount(ctx, flatID, rng)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Nights:          rng.Nights(),
		BasePrice:       base,
		DiscountPercent: discount,
		Total:           ApplyDiscount(base, discount),
	}, nil
}

// RealizedDiscountPercent фактическая скидка бронирования относительно текущих базовых цен.
// Не зависит от таблицы скидок: уровни могли измениться после бронирования.
func (e *Engine) RealizedDiscountPercent(ctx context.Context, booking *domain.Booking) (int, error) {
	base, err := e.BasePrice(ctx, booking.FlatID, booking.Range())
	if err != nil {
		return 0, err
	}
	return RealizedDiscount(base, booking.Price), nil
}
