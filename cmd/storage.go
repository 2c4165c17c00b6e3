package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-FlatrentService/internal/config"
	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/calendar"
	discountRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/discount"
	flatRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/flat"
	"github.com/m04kA/SMC-FlatrentService/internal/infra/storage/memory"
	tenantRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-FlatrentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
	"github.com/m04kA/SMC-FlatrentService/pkg/metrics"
	"github.com/m04kA/SMC-FlatrentService/pkg/txmanager"
)

// Общие для PostgreSQL и хранилища в памяти наборы методов

type flatStore interface {
	Create(ctx context.Context, flat *domain.Flat) (*domain.Flat, error)
	GetByID(ctx context.Context, id int64) (*domain.Flat, error)
	LockForUpdate(ctx context.Context, id int64) (*domain.Flat, error)
	ListIDs(ctx context.Context) ([]int64, error)
	Delete(ctx context.Context, id int64) error
}

type calendarStore interface {
	GetRange(ctx context.Context, flatID int64, rng domain.DateRange) ([]*domain.CalendarDay, error)
	BulkSetOpen(ctx context.Context, flatID int64, rng domain.DateRange, isOpen bool) (int64, error)
	BulkSetPriceAndMinNights(ctx context.Context, flatID int64, rng domain.DateRange, basePrice *int64, minNights *int) (int64, error)
	Seed(ctx context.Context, flatID int64, rng domain.DateRange, defaults domain.CalendarDefaults) (int64, error)
}

type discountStore interface {
	ListTiers(ctx context.Context, flatID int64) ([]*domain.DiscountTier, error)
	ReplaceTiers(ctx context.Context, flatID int64, tiers []*domain.DiscountTier) ([]*domain.DiscountTier, error)
}

type bookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, flatID int64, rng domain.DateRange, excludeID *int64) ([]*domain.Booking, error)
	ListByFlatAndYear(ctx context.Context, flatID int64, year int) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

type tenantStore interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Tenant, error)
	Upsert(ctx context.Context, tenant *domain.Tenant) error
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type storage struct {
	flats     flatStore
	calendar  calendarStore
	discounts discountStore
	bookings  bookingStore
	tenants   tenantStore
	tx        txManager
	close     func()
}

// openStorage создает репозитории выбранного драйвера.
// stopMetricsCh останавливает сбор статистики пула соединений.
func openStorage(cfg *config.Config, m *metrics.Metrics, log *logger.Logger, stopMetricsCh <-chan struct{}) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage, data will be lost on restart")
		store := memory.NewStore()
		return &storage{
			flats:     memory.NewFlatRepository(store),
			calendar:  memory.NewCalendarRepository(store),
			discounts: memory.NewDiscountRepository(store),
			bookings:  memory.NewBookingRepository(store),
			tenants:   memory.NewTenantRepository(store),
			tx:        memory.NewTxManager(store),
			close:     func() {},
		}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	st := &storage{close: func() { _ = db.Close() }}

	if m != nil {
		wrapped := dbmetrics.WrapWithDefault(db, m, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")

		st.flats = flatRepo.NewRepository(wrapped)
		st.calendar = calendarRepo.NewRepository(wrapped)
		st.discounts = discountRepo.NewRepository(wrapped)
		st.bookings = bookingRepo.NewRepository(wrapped)
		st.tenants = tenantRepo.NewRepository(wrapped)
		st.tx = txmanager.NewTransactionManager(wrapped, m)
		return st, nil
	}

	st.flats = flatRepo.NewRepository(db)
	st.calendar = calendarRepo.NewRepository(db)
	st.discounts = discountRepo.NewRepository(db)
	st.bookings = bookingRepo.NewRepository(db)
	st.tenants = tenantRepo.NewRepository(db)
	st.tx = txmanager.NewTransactionManager(dbmetrics.SQLBeginner{DB: db}, nil)
	return st, nil
}
