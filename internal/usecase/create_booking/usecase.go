package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	flatRepo     FlatRepository
	calendarRepo CalendarRepository
	bookingRepo  BookingRepository
	availability AvailabilityChecker
	pricing      PricingEngine
	tenants      TenantRegistrar
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
	pricing PricingEngine,
	tenants TenantRegistrar,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		flatRepo:     flatRepo,
		calendarRepo: calendarRepo,
		bookingRepo:  bookingRepo,
		availability: availability,
		pricing:      pricing,
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

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию и блокировку строки квартиры,
// чтобы проверка дат и запись бронирования выполнялись атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: landlord=%d, flat=%d, checkin=%s, checkout=%s, source=%q",
		req.LandlordID, req.FlatID, req.CheckinDate.Format(domain.DateFormat),
		req.CheckoutDate.Format(domain.DateFormat), req.Source)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	rng, err := domain.NewDateRange(req.CheckinDate, req.CheckoutDate)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid range: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var (
		result *domain.Booking
		tenant *domain.Tenant
		base   int64
		disc   int
	)

	// 3. Проверки и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем квартиру и проверяем владельца
		flat, err := uc.flatRepo.LockForUpdate(txCtx, req.FlatID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.logger.Warn("CreateBooking: flat id=%d not found", req.FlatID)
				return ErrFlatNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock flat id=%d: %v", req.FlatID, err)
			return fmt.Errorf("%w: failed to lock flat: %v", ErrInternal, err)
		}

		if !flat.IsOwnedBy(req.LandlordID) {
			uc.logger.Warn("CreateBooking: flat id=%d does not belong to landlord=%d", req.FlatID, req.LandlordID)
			return ErrAccessDenied
		}

		// 3.2. Минимальный срок по дню заезда
		checkinDays, err := uc.calendarRepo.GetRange(txCtx, req.FlatID, domain.DateRange{Start: rng.Start, End: domain.AddDays(rng.Start, 1)})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get checkin day: %v", err)
			return fmt.Errorf("%w: failed to get checkin day: %v", ErrInternal, err)
		}

		if err := domain.CheckMinimumStay(rng, domain.IndexDays(checkinDays).Get(rng.Start)); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			uc.metrics.ObserveBookingConflict("min_nights")
			return err
		}

		// 3.3. Даты свободны и открыты
		if err := uc.availability.Check(txCtx, req.FlatID, rng, nil, false); err != nil {
			if errors.Is(err, domain.ErrDateConflict) {
				uc.logger.Warn("CreateBooking: %v", err)
				uc.metrics.ObserveBookingConflict("unavailable")
				return err
			}
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		// 3.4. Расчет цены
		quote, err := uc.pricing.Quote(txCtx, req.FlatID, rng)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to quote price: %v", err)
			return fmt.Errorf("%w: failed to quote price: %v", ErrInternal, err)
		}
		base, disc = quote.BasePrice, quote.DiscountPercent

		price := quote.Total
		if req.Price != nil {
			price = *req.Price
		}

		// 3.5. Гость (до бронирования: на него ссылается внешний ключ)
		tenant, err = uc.tenants.Register(txCtx, req.TenantPhone, req.TenantName)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				uc.logger.Warn("CreateBooking: invalid tenant: %v", err)
				return err
			}
			uc.logger.Error("CreateBooking: failed to register tenant: %v", err)
			return fmt.Errorf("%w: failed to register tenant: %v", ErrInternal, err)
		}

		// 3.6. Создаем бронирование
		booking := &domain.Booking{
			FlatID:       req.FlatID,
			Source:       req.Source,
			Status:       domain.InitialStatus(rng.Start, rng.End, now),
			CheckinDate:  rng.Start,
			CheckoutDate: rng.End,
			Price:        price,
			Comment:      req.Comment,
			TenantPhone:  tenant.Phone,
			BookedAt:     now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, domain.ErrDateConflict) {
				uc.logger.Warn("CreateBooking: rejected by storage: %v", err)
				uc.metrics.ObserveBookingConflict("unavailable")
				return err
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveBookingWritten("create", string(result.Status))
	uc.logger.Info("CreateBooking: successfully created booking id=%d status=%s price=%d",
		result.ID, result.Status, result.Price)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		FlatID:          result.FlatID,
		Source:          result.Source,
		Status:          string(result.Status),
		CheckinDate:     result.CheckinDate,
		CheckoutDate:    result.CheckoutDate,
		Nights:          result.Nights(),
		Price:           result.Price,
		Comment:         result.Comment,
		BasePrice:       base,
		DiscountPercent: disc,
		TenantPhone:     tenant.Phone,
		TenantName:      tenant.Name,
		BookedAt:        result.BookedAt,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
