package calendar_extender

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	cron "github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// ErrExtendFailed возвращается, если календарь хотя бы одной квартиры не продлен
var ErrExtendFailed = errors.New("calendar_extender: extend failed")

// Settings окно календаря и значения новых дней
type Settings struct {
	MonthsBack  int
	DaysForward int
	Defaults    domain.CalendarDefaults
}

// Extender по расписанию досоздает дни календаря всех квартир,
// чтобы окно бронирования сдвигалось вместе с текущей датой.
// Существующие дни не меняются.
type Extender struct {
	flatRepo     FlatRepository
	calendarRepo CalendarRepository
	metrics      Metrics
	settings     Settings
	logger       Logger
	timeProvider TimeProvider

	mu   sync.Mutex
	cron *cron.Cron
}

func NewExtender(
	flatRepo FlatRepository,
	calendarRepo CalendarRepository,
	metrics Metrics,
	settings Settings,
	logger Logger,
) *Extender {
	return &Extender{
		flatRepo:     flatRepo,
		calendarRepo: calendarRepo,
		metrics:      metrics,
		settings:     settings,
		logger:       logger,
		timeProvider: RealTimeProvider{},
	}
}

// WithTimeProvider устанавливает кастомный TimeProvider (для тестов)
func (e *Extender) WithTimeProvider(tp TimeProvider) *Extender {
	e.timeProvider = tp
	return e
}

// RunOnce продлевает календари всех квартир и возвращает число созданных дней.
// Ошибка по одной квартире не останавливает обработку остальных.
func (e *Extender) RunOnce(ctx context.Context) (int64, error) {
	window := domain.CalendarWindow(e.timeProvider.Now(), e.settings.MonthsBack, e.settings.DaysForward)

	ids, err := e.flatRepo.ListIDs(ctx)
	if err != nil {
		e.logger.Error("ExtendCalendars: failed to list flats: %v", err)
		return 0, fmt.Errorf("%w: list flats: %v", ErrExtendFailed, err)
	}

	var (
		total  int64
		failed int
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, err := e.calendarRepo.Seed(ctx, id, window, e.settings.Defaults)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// квартиру удалили после ListIDs
				continue
			}
			e.logger.Error("ExtendCalendars: failed to seed flat=%d %s: %v", id, window, err)
			failed++
			continue
		}
		total += n
	}

	e.metrics.ObserveDaysSeeded("extend", total)
	e.logger.Info("ExtendCalendars: window=%s, flats=%d, days created=%d, failed=%d", window, len(ids), total, failed)

	if failed > 0 {
		return total, fmt.Errorf("%w: %d of %d flats", ErrExtendFailed, failed, len(ids))
	}
	return total, nil
}

// Start запускает продление по cron выражению (в UTC)
func (e *Extender) Start(schedule string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cron != nil {
		return fmt.Errorf("%w: already started", ErrExtendFailed)
	}

	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(schedule, func() {
		if _, err := e.RunOnce(context.Background()); err != nil {
			e.logger.Warn("ExtendCalendars: scheduled run finished with error: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("%w: schedule %q: %v", ErrExtendFailed, schedule, err)
	}

	c.Start()
	e.cron = c
	return nil
}

// Stop останавливает расписание и ждет завершения запущенного продления
func (e *Extender) Stop(ctx context.Context) {
	e.mu.Lock()
	c := e.cron
	e.cron = nil
	e.mu.Unlock()

	if c == nil {
		return
	}

	select {
	case <-c.Stop().Done():
	case <-ctx.Done():
		e.logger.Warn("ExtendCalendars: stop timed out, running extension abandoned")
	}
}
