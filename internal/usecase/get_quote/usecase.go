package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// UseCase use case для предварительного расчета бронирования
type UseCase struct {
	flatRepo     FlatRepository
	calendarRepo CalendarRepository
	availability AvailabilityChecker
	pricing      PricingEngine
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	flatRepo FlatRepository,
	calendarRepo CalendarRepository,
	availability AvailabilityChecker,
	pricing PricingEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		flatRepo:     flatRepo,
		calendarRepo: calendarRepo,
		availability: availability,
		pricing:      pricing,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute считает цену проживания и проверяет, можно ли забронировать даты.
// Ничего не записывает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	rng, err := domain.NewDateRange(req.CheckinDate, req.CheckoutDate)
	if err != nil {
		uc.logger.Warn("GetQuote: invalid range: %v", err)
		return nil, err
	}

	resp := &Response{
		FlatID:       req.FlatID,
		CheckinDate:  rng.Start,
		CheckoutDate: rng.End,
	}

	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		flat, err := uc.flatRepo.GetByID(txCtx, req.FlatID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrFlatNotFound
			}
			uc.logger.Error("GetQuote: failed to get flat id=%d: %v", req.FlatID, err)
			return fmt.Errorf("%w: failed to get flat: %v", ErrInternal, err)
		}

		if !flat.IsOwnedBy(req.LandlordID) {
			uc.logger.Warn("GetQuote: flat id=%d does not belong to landlord=%d", req.FlatID, req.LandlordID)
			return ErrAccessDenied
		}

		quote, err := uc.pricing.Quote(txCtx, req.FlatID, rng)
		if err != nil {
			uc.logger.Error("GetQuote: failed to quote: %v", err)
			return fmt.Errorf("%w: failed to quote: %v", ErrInternal, err)
		}
		resp.Nights = quote.Nights
		resp.BasePrice = quote.BasePrice
		resp.DiscountPercent = quote.DiscountPercent
		resp.Total = quote.Total

		resp.Available, err = uc.availability.IsAvailable(txCtx, req.FlatID, rng, nil, false)
		if err != nil {
			uc.logger.Error("GetQuote: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		days, err := uc.calendarRepo.GetRange(txCtx, req.FlatID, domain.DateRange{Start: rng.Start, End: domain.AddDays(rng.Start, 1)})
		if err != nil {
			uc.logger.Error("GetQuote: failed to get checkin day: %v", err)
			return fmt.Errorf("%w: failed to get checkin day: %v", ErrInternal, err)
		}
		if day := domain.IndexDays(days).Get(rng.Start); day != nil {
			resp.MinNights = day.MinNights
		}
		resp.MeetsMin = resp.Nights >= resp.MinNights

		return nil
	})

	if err != nil {
		return nil, err
	}

	return resp, nil
}
