package set_discounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// UseCase use case для замены уровней скидок квартиры
type UseCase struct {
	flatRepo     FlatRepository
	discountRepo DiscountRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	flatRepo FlatRepository,
	discountRepo DiscountRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		flatRepo:     flatRepo,
		discountRepo: discountRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute заменяет набор уровней скидок целиком.
// Уже созданные бронирования не пересчитываются: цена в них хранится.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetDiscounts: landlord=%d, flat=%d, tiers=%d", req.LandlordID, req.FlatID, len(req.Tiers))

	tiers, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SetDiscounts: validation failed: %v", err)
		return nil, err
	}

	var saved []*domain.DiscountTier

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		flat, err := uc.flatRepo.LockForUpdate(txCtx, req.FlatID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.logger.Warn("SetDiscounts: flat id=%d not found", req.FlatID)
				return ErrFlatNotFound
			}
			uc.logger.Error("SetDiscounts: failed to lock flat id=%d: %v", req.FlatID, err)
			return fmt.Errorf("%w: failed to lock flat: %v", ErrInternal, err)
		}

		if !flat.IsOwnedBy(req.LandlordID) {
			uc.logger.Warn("SetDiscounts: flat id=%d does not belong to landlord=%d", req.FlatID, req.LandlordID)
			return ErrAccessDenied
		}

		saved, err = uc.discountRepo.ReplaceTiers(txCtx, req.FlatID, tiers)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidDiscountConfig) {
				uc.logger.Warn("SetDiscounts: rejected by storage: %v", err)
				return err
			}
			uc.logger.Error("SetDiscounts: failed to replace tiers: %v", err)
			return fmt.Errorf("%w: failed to replace tiers: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetDiscounts: successfully saved %d tiers for flat id=%d", len(saved), req.FlatID)

	return &Response{FlatID: req.FlatID, Tiers: saved}, nil
}
