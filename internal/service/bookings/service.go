package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
type Service struct {
	bookingRepo BookingRepository
	flatRepo    FlatRepository
	tenantRepo  TenantRepository
	pricing     PricingEngine
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	flatRepo FlatRepository,
	tenantRepo TenantRepository,
	pricing PricingEngine,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		flatRepo:    flatRepo,
		tenantRepo:  tenantRepo,
		pricing:     pricing,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование видит только владелец квартиры
func (s *Service) GetByID(ctx context.Context, id int64, landlordID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for landlord=%d", id, landlordID)

	var resp *models.BookingResponse

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "GetByID", id)
		if err != nil {
			return err
		}

		if err := s.checkFlatAccess(txCtx, "GetByID", booking.FlatID, landlordID, false); err != nil {
			return err
		}

		resp, err = s.toResponse(txCtx, booking, map[string]string{})
		return err
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return resp, nil
}

// ListByFlatAndYear получает бронирования квартиры с заездом или выездом в указанном году,
// включая отмененные. Опционально фильтрует по статусу.
func (s *Service) ListByFlatAndYear(ctx context.Context, req *models.ListFlatBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByFlatAndYear: flat=%d, year=%d, landlord=%d", req.FlatID, req.Year, req.LandlordID)

	if req.Year < 1970 || req.Year > 9999 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidInput, req.Year)
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		st, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByFlatAndYear: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		status = &st
	}

	resp := &models.BookingListResponse{Bookings: []models.BookingResponse{}}

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if err := s.checkFlatAccess(txCtx, "ListByFlatAndYear", req.FlatID, req.LandlordID, false); err != nil {
			return err
		}

		bookings, err := s.bookingRepo.ListByFlatAndYear(txCtx, req.FlatID, req.Year)
		if err != nil {
			s.logger.Error("ListByFlatAndYear: repository error for flat=%d: %v", req.FlatID, err)
			return fmt.Errorf("%w: ListByFlatAndYear - repository error: %v", ErrInternal, err)
		}

		names := make(map[string]string)
		for _, b := range bookings {
			if status != nil && b.Status != *status {
				continue
			}
			item, err := s.toResponse(txCtx, b, names)
			if err != nil {
				return err
			}
			resp.Bookings = append(resp.Bookings, *item)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ListByFlatAndYear: found %d bookings for flat=%d in %d", len(resp.Bookings), req.FlatID, req.Year)
	return resp, nil
}

// Delete удаляет бронирование в любом статусе. Это не переход статуса.
func (s *Service) Delete(ctx context.Context, id int64, landlordID int64) error {
	s.logger.Info("Delete: booking id=%d by landlord=%d", id, landlordID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Delete", id)
		if err != nil {
			return err
		}

		if err := s.checkFlatAccess(txCtx, "Delete", booking.FlatID, landlordID, true); err != nil {
			return err
		}

		if err := s.bookingRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkFlatAccess проверяет, что квартира принадлежит арендодателю.
// lock блокирует строку квартиры до конца транзакции.
func (s *Service) checkFlatAccess(ctx context.Context, op string, flatID, landlordID int64, lock bool) error {
	get := s.flatRepo.GetByID
	if lock {
		get = s.flatRepo.LockForUpdate
	}

	flat, err := get(ctx, flatID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("%s: flat id=%d not found", op, flatID)
			return ErrFlatNotFound
		}
		s.logger.Error("%s: failed to get flat id=%d: %v", op, flatID, err)
		return fmt.Errorf("%w: %s - failed to get flat: %v", ErrInternal, op, err)
	}

	if !flat.IsOwnedBy(landlordID) {
		s.logger.Warn("%s: flat id=%d does not belong to landlord=%d", op, flatID, landlordID)
		return ErrAccessDenied
	}

	return nil
}

// toResponse дополняет бронирование именем гостя и фактической скидкой.
// names кэширует имена гостей в пределах одного запроса.
func (s *Service) toResponse(ctx context.Context, b *domain.Booking, names map[string]string) (*models.BookingResponse, error) {
	name, ok := names[b.TenantPhone]
	if !ok {
		tenant, err := s.tenantRepo.FindByPhone(ctx, b.TenantPhone)
		switch {
		case err == nil:
			name = tenant.Name
		case errors.Is(err, domain.ErrNotFound):
			s.logger.Warn("toResponse: tenant phone=%s of booking id=%d not found", b.TenantPhone, b.ID)
		default:
			s.logger.Error("toResponse: failed to get tenant phone=%s: %v", b.TenantPhone, err)
			return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
		}
		names[b.TenantPhone] = name
	}

	discount, err := s.pricing.RealizedDiscountPercent(ctx, b)
	if err != nil {
		s.logger.Error("toResponse: failed to compute discount of booking id=%d: %v", b.ID, err)
		return nil, fmt.Errorf("%w: failed to compute discount: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(b, name, discount), nil
}
