package edit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// UseCase use case для изменения и отмены бронирования
type UseCase struct {
	flatRepo     FlatRepository
	calendarRepo CalendarRepository
	bookingRepo  BookingRepository
	availability AvailabilityChecker
	tenants      TenantService
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	flatRepo FlatRepository,
	calendarRepo CalendarRepository,
	bookingRepo BookingRepository,
	availability AvailabilityChecker,
	tenants TenantService,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		flatRepo:     flatRepo,
		calendarRepo: calendarRepo,
		bookingRepo:  bookingRepo,
		availability: availability,
		tenants:      tenants,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute изменяет даты, цену, гостя и статус бронирования.
// Проверки доступности исключают само бронирование.
// Отмененное бронирование остается отмененным.
// Даты не проверяются только при явном запросе отмены.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: landlord=%d, booking=%d, checkin=%s, checkout=%s",
		req.LandlordID, req.BookingID, req.CheckinDate.Format(domain.DateFormat),
		req.CheckoutDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	requested, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	rng, err := domain.NewDateRange(req.CheckinDate, req.CheckoutDate)
	if err != nil {
		uc.logger.Warn("EditBooking: invalid range: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		result *domain.Booking
		tenant *domain.Tenant
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Бронирование и владелец квартиры
		current, err := uc.loadOwned(txCtx, req.BookingID, req.LandlordID)
		if err != nil {
			return err
		}

		// 3. Новый статус
		status, err := domain.ResolveStatus(current.Status, requested, rng.Start, rng.End, now)
		if err != nil {
			uc.logger.Warn("EditBooking: booking id=%d: %v", current.ID, err)
			return err
		}

		// 4. Проверки дат, кроме явной отмены
		explicitCancel := requested != nil && *requested == domain.StatusCancelled
		if !explicitCancel {
			if err := uc.checkDates(txCtx, current, rng); err != nil {
				return err
			}
		}

		// 5. Гость
		tenant, err = uc.tenants.Register(txCtx, req.TenantPhone, req.TenantName)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				uc.logger.Warn("EditBooking: invalid tenant: %v", err)
				return err
			}
			uc.logger.Error("EditBooking: failed to register tenant: %v", err)
			return fmt.Errorf("%w: failed to register tenant: %v", ErrInternal, err)
		}

		// 6. Запись
		updated := current.Clone()
		updated.CheckinDate = rng.Start
		updated.CheckoutDate = rng.End
		updated.Source = req.Source
		updated.Comment = req.Comment
		updated.TenantPhone = tenant.Phone
		updated.Status = status
		if req.Price != nil {
			updated.Price = *req.Price
		}

		result, err = uc.bookingRepo.Update(txCtx, updated)
		if err != nil {
			if errors.Is(err, domain.ErrDateConflict) {
				uc.logger.Warn("EditBooking: rejected by storage: %v", err)
				uc.metrics.ObserveBookingConflict("unavailable")
				return err
			}
			uc.logger.Error("EditBooking: failed to update booking id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveBookingWritten("edit", string(result.Status))
	uc.logger.Info("EditBooking: successfully updated booking id=%d status=%s", result.ID, result.Status)

	return toResponse(result, tenant), nil
}

// Cancel отменяет бронирование. Даты и минимальный срок не проверяются.
// Завершенное бронирование отменить нельзя.
func (uc *UseCase) Cancel(ctx context.Context, req *CancelRequest) (*Response, error) {
	uc.logger.Info("CancelBooking: landlord=%d, booking=%d", req.LandlordID, req.BookingID)

	if err := validateCancelRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	cancelled := domain.StatusCancelled

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.loadOwned(txCtx, req.BookingID, req.LandlordID)
		if err != nil {
			return err
		}

		status, err := domain.ResolveStatus(current.Status, &cancelled, current.CheckinDate, current.CheckoutDate, now)
		if err != nil {
			uc.logger.Warn("CancelBooking: booking id=%d: %v", current.ID, err)
			return err
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, current.ID, status); err != nil {
			uc.logger.Error("CancelBooking: failed to update status of booking id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		result = current
		result.Status = status
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveBookingWritten("cancel", string(result.Status))
	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d", result.ID)

	tenant, err := uc.tenants.Find(ctx, result.TenantPhone)
	if err != nil {
		uc.logger.Warn("CancelBooking: tenant phone=%s not loaded: %v", result.TenantPhone, err)
		tenant = &domain.Tenant{Phone: result.TenantPhone}
	}

	return toResponse(result, tenant), nil
}

// loadOwned загружает бронирование и блокирует его квартиру, проверяя владельца
func (uc *UseCase) loadOwned(ctx context.Context, bookingID, landlordID int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("EditBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("EditBooking: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	flat, err := uc.flatRepo.LockForUpdate(ctx, booking.FlatID)
	if err != nil {
		uc.logger.Error("EditBooking: failed to lock flat id=%d: %v", booking.FlatID, err)
		return nil, fmt.Errorf("%w: failed to lock flat: %v", ErrInternal, err)
	}

	if !flat.IsOwnedBy(landlordID) {
		uc.logger.Warn("EditBooking: booking id=%d does not belong to landlord=%d", bookingID, landlordID)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// checkDates проверяет минимальный срок и свободные даты, исключая само бронирование
func (uc *UseCase) checkDates(ctx context.Context, current *domain.Booking, rng domain.DateRange) error {
	days, err := uc.calendarRepo.GetRange(ctx, current.FlatID, domain.DateRange{Start: rng.Start, End: domain.AddDays(rng.Start, 1)})
	if err != nil {
		uc.logger.Error("EditBooking: failed to get checkin day: %v", err)
		return fmt.Errorf("%w: failed to get checkin day: %v", ErrInternal, err)
	}

	if err := domain.CheckMinimumStay(rng, domain.IndexDays(days).Get(rng.Start)); err != nil {
		uc.logger.Warn("EditBooking: %v", err)
		uc.metrics.ObserveBookingConflict("min_nights")
		return err
	}

	self := current.ID
	if err := uc.availability.Check(ctx, current.FlatID, rng, &self, false); err != nil {
		if errors.Is(err, domain.ErrDateConflict) {
			uc.logger.Warn("EditBooking: %v", err)
			uc.metrics.ObserveBookingConflict("unavailable")
			return err
		}
		uc.logger.Error("EditBooking: availability check failed: %v", err)
		return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}

	return nil
}

func toResponse(b *domain.Booking, tenant *domain.Tenant) *Response {
	return &Response{
		ID:           b.ID,
		FlatID:       b.FlatID,
		Source:       b.Source,
		Status:       string(b.Status),
		CheckinDate:  b.CheckinDate,
		CheckoutDate: b.CheckoutDate,
		Nights:       b.Nights(),
		Price:        b.Price,
		Comment:      b.Comment,
		TenantPhone:  tenant.Phone,
		TenantName:   tenant.Name,
		BookedAt:     b.BookedAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
