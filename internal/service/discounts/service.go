package discounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Service сервис просмотра уровней скидок
type Service struct {
	flatRepo     FlatRepository
	discountRepo DiscountRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса скидок
func NewService(flatRepo FlatRepository, discountRepo DiscountRepository, logger Logger) *Service {
	return &Service{
		flatRepo:     flatRepo,
		discountRepo: discountRepo,
		logger:       logger,
	}
}

// List возвращает уровни скидок квартиры по возрастанию порога
func (s *Service) List(ctx context.Context, landlordID, flatID int64) ([]*domain.DiscountTier, error) {
	flat, err := s.flatRepo.GetByID(ctx, flatID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrFlatNotFound
		}
		s.logger.Error("ListDiscounts: failed to get flat id=%d: %v", flatID, err)
		return nil, fmt.Errorf("%w: failed to get flat: %v", ErrInternal, err)
	}

	if !flat.IsOwnedBy(landlordID) {
		s.logger.Warn("ListDiscounts: flat id=%d does not belong to landlord=%d", flatID, landlordID)
		return nil, ErrAccessDenied
	}

	tiers, err := s.discountRepo.ListTiers(ctx, flatID)
	if err != nil {
		s.logger.Error("ListDiscounts: failed to list tiers of flat id=%d: %v", flatID, err)
		return nil, fmt.Errorf("%w: failed to list tiers: %v", ErrInternal, err)
	}

	return tiers, nil
}
