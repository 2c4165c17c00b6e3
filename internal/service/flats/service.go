package flats

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Service сервис квартир
type Service struct {
	flatRepo  FlatRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса квартир
func NewService(flatRepo FlatRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		flatRepo:  flatRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает квартиру арендодателя
func (s *Service) GetByID(ctx context.Context, id, landlordID int64) (*domain.Flat, error) {
	flat, err := s.flatRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}

	if !flat.IsOwnedBy(landlordID) {
		s.logger.Warn("GetByID: flat id=%d does not belong to landlord=%d", id, landlordID)
		return nil, ErrAccessDenied
	}

	return flat, nil
}

// Delete удаляет квартиру вместе с календарем, скидками и бронированиями
func (s *Service) Delete(ctx context.Context, id, landlordID int64) error {
	s.logger.Info("DeleteFlat: flat id=%d by landlord=%d", id, landlordID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		flat, err := s.flatRepo.LockForUpdate(txCtx, id)
		if err != nil {
			return s.mapError("DeleteFlat", id, err)
		}

		if !flat.IsOwnedBy(landlordID) {
			s.logger.Warn("DeleteFlat: flat id=%d does not belong to landlord=%d", id, landlordID)
			return ErrAccessDenied
		}

		if err := s.flatRepo.Delete(txCtx, id); err != nil {
			return s.mapError("DeleteFlat", id, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteFlat: successfully deleted flat id=%d", id)
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("%s: flat id=%d not found", op, id)
		return ErrFlatNotFound
	}
	s.logger.Error("%s: repository error for flat id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
