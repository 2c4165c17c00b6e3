package create_flat

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// UseCase use case для создания квартиры вместе с календарем
type UseCase struct {
	flatRepo     FlatRepository
	calendarRepo CalendarRepository
	txManager    TransactionManager
	metrics      Metrics
	settings     CalendarSettings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	flatRepo FlatRepository,
	calendarRepo CalendarRepository,
	txManager TransactionManager,
	metrics Metrics,
	settings CalendarSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		flatRepo:     flatRepo,
		calendarRepo: calendarRepo,
		txManager:    txManager,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает квартиру и непрерывный диапазон открытых дней календаря
// от settings.MonthsBack месяцев назад до settings.DaysForward дней вперед
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateFlat: landlord=%d, name=%q", req.LandlordID, req.Name)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateFlat: validation failed: %v", err)
		return nil, err
	}

	window := domain.CalendarWindow(uc.timeProvider.Now(), uc.settings.MonthsBack, uc.settings.DaysForward)

	var (
		flat   *domain.Flat
		seeded int64
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.flatRepo.Create(txCtx, &domain.Flat{
			LandlordID:  req.LandlordID,
			Name:        strings.TrimSpace(req.Name),
			Address:     strings.TrimSpace(req.Address),
			LinkSites:   req.LinkSites,
			LinkTenants: req.LinkTenants,
			Comment:     req.Comment,
		})
		if err != nil {
			uc.logger.Error("CreateFlat: failed to create flat: %v", err)
			return fmt.Errorf("%w: failed to create flat: %v", ErrInternal, err)
		}

		seeded, err = uc.calendarRepo.Seed(txCtx, created.ID, window, uc.settings.Defaults)
		if err != nil {
			uc.logger.Error("CreateFlat: failed to seed calendar of flat id=%d %s: %v", created.ID, window, err)
			return fmt.Errorf("%w: failed to seed calendar: %v", ErrInternal, err)
		}

		flat = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveDaysSeeded("create", seeded)
	uc.logger.Info("CreateFlat: successfully created flat id=%d with %d calendar days %s", flat.ID, seeded, window)

	return &Response{
		ID:           flat.ID,
		LandlordID:   flat.LandlordID,
		Name:         flat.Name,
		Address:      flat.Address,
		LinkSites:    flat.LinkSites,
		LinkTenants:  flat.LinkTenants,
		Comment:      flat.Comment,
		CalendarFrom: window.Start,
		CalendarTo:   window.End,
		DaysSeeded:   seeded,
		CreatedAt:    flat.CreatedAt,
		UpdatedAt:    flat.UpdatedAt,
	}, nil
}
