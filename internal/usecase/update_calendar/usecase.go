package update_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// UseCase use case для массового изменения дней календаря
type UseCase struct {
	flatRepo     FlatRepository
	calendarRepo CalendarRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	flatRepo FlatRepository,
	calendarRepo CalendarRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		flatRepo:     flatRepo,
		calendarRepo: calendarRepo,
		availability: availability,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute открывает/закрывает дни и задает цену и минимальный срок.
// Закрыть можно только дни без активных бронирований.
// Все изменения применяются в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateCalendar: landlord=%d, flat=%d, from=%s, to=%s",
		req.LandlordID, req.FlatID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	rng, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateCalendar: validation failed: %v", err)
		return nil, err
	}

	var (
		updated int64
		days    []*domain.CalendarDay
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		flat, err := uc.flatRepo.LockForUpdate(txCtx, req.FlatID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.logger.Warn("UpdateCalendar: flat id=%d not found", req.FlatID)
				return ErrFlatNotFound
			}
			uc.logger.Error("UpdateCalendar: failed to lock flat id=%d: %v", req.FlatID, err)
			return fmt.Errorf("%w: failed to lock flat: %v", ErrInternal, err)
		}

		if !flat.IsOwnedBy(req.LandlordID) {
			uc.logger.Warn("UpdateCalendar: flat id=%d does not belong to landlord=%d", req.FlatID, req.LandlordID)
			return ErrAccessDenied
		}

		if req.IsOpen != nil {
			if !*req.IsOpen {
				// Уже закрытые дни внутри диапазона не мешают закрытию
				if err := uc.availability.Check(txCtx, req.FlatID, rng, nil, true); err != nil {
					if errors.Is(err, domain.ErrDateConflict) {
						uc.logger.Warn("UpdateCalendar: cannot close %s: %v", rng, err)
						return fmt.Errorf("%w: %v", ErrDaysBooked, err)
					}
					uc.logger.Error("UpdateCalendar: availability check failed: %v", err)
					return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
				}
			}

			updated, err = uc.calendarRepo.BulkSetOpen(txCtx, req.FlatID, rng, *req.IsOpen)
			if err != nil {
				uc.logger.Error("UpdateCalendar: failed to set is_open: %v", err)
				return fmt.Errorf("%w: failed to set is_open: %v", ErrInternal, err)
			}
		}

		if req.BasePrice != nil || req.MinNights != nil {
			updated, err = uc.calendarRepo.BulkSetPriceAndMinNights(txCtx, req.FlatID, rng, req.BasePrice, req.MinNights)
			if err != nil {
				uc.logger.Error("UpdateCalendar: failed to set price/min_nights: %v", err)
				return fmt.Errorf("%w: failed to set price/min_nights: %v", ErrInternal, err)
			}
		}

		days, err = uc.calendarRepo.GetRange(txCtx, req.FlatID, rng)
		if err != nil {
			uc.logger.Error("UpdateCalendar: failed to reload days: %v", err)
			return fmt.Errorf("%w: failed to reload days: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if updated < int64(rng.Nights()) {
		uc.logger.Warn("UpdateCalendar: flat=%d %s: only %d of %d days exist in calendar",
			req.FlatID, rng, updated, rng.Nights())
	}
	uc.logger.Info("UpdateCalendar: successfully updated %d days of flat id=%d", updated, req.FlatID)

	return &Response{
		FlatID:  req.FlatID,
		From:    rng.Start,
		To:      domain.AddDays(rng.End, -1),
		Updated: updated,
		Days:    days,
	}, nil
}
