package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	cancelBookingHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/create_booking"
	createFlatHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/create_flat"
	deleteBookingHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/delete_booking"
	deleteFlatHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/delete_flat"
	editBookingHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/edit_booking"
	getBookingHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/get_calendar"
	getDiscountsHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/get_discounts"
	getFlatHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/get_flat"
	getFlatBookingsHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/get_flat_bookings"
	getQuoteHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/get_quote"
	getStatisticsHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/get_statistics"
	setDiscountsHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/set_discounts"
	updateCalendarHandler "github.com/m04kA/SMC-FlatrentService/internal/api/handlers/update_calendar"
	"github.com/m04kA/SMC-FlatrentService/internal/api/middleware"
	"github.com/m04kA/SMC-FlatrentService/internal/config"
	"github.com/m04kA/SMC-FlatrentService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-FlatrentService/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-FlatrentService/internal/service/calendar"
	discountsService "github.com/m04kA/SMC-FlatrentService/internal/service/discounts"
	flatsService "github.com/m04kA/SMC-FlatrentService/internal/service/flats"
	"github.com/m04kA/SMC-FlatrentService/internal/service/pricing"
	statisticsService "github.com/m04kA/SMC-FlatrentService/internal/service/statistics"
	tenantsService "github.com/m04kA/SMC-FlatrentService/internal/service/tenants"
	createBookingUC "github.com/m04kA/SMC-FlatrentService/internal/usecase/create_booking"
	createFlatUC "github.com/m04kA/SMC-FlatrentService/internal/usecase/create_flat"
	editBookingUC "github.com/m04kA/SMC-FlatrentService/internal/usecase/edit_booking"
	getQuoteUC "github.com/m04kA/SMC-FlatrentService/internal/usecase/get_quote"
	setDiscountsUC "github.com/m04kA/SMC-FlatrentService/internal/usecase/set_discounts"
	updateCalendarUC "github.com/m04kA/SMC-FlatrentService/internal/usecase/update_calendar"
	calendarExtender "github.com/m04kA/SMC-FlatrentService/internal/worker/calendar_extender"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
	"github.com/m04kA/SMC-FlatrentService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-FlatrentService...")
	log.Info("Configuration loaded from %s (storage=%s)", configPath, cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	st, err := openStorage(cfg, metricsCollector, log, stopMetricsCh)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer st.close()

	// Сервисы
	availabilityChecker := availability.NewChecker(st.bookings, st.calendar, log)
	pricingEngine := pricing.NewEngine(st.calendar, st.discounts, log)
	tenantSvc := tenantsService.NewService(st.tenants, log)
	bookingSvc := bookingsService.NewService(st.bookings, st.flats, st.tenants, pricingEngine, st.tx, log)
	flatSvc := flatsService.NewService(st.flats, st.tx, log)
	calendarSvc := calendarService.NewService(st.flats, st.calendar, log)
	discountSvc := discountsService.NewService(st.flats, st.discounts, log)
	statisticsSvc := statisticsService.NewService(st.flats, st.bookings, st.calendar, log)

	// Use cases
	calendarSettings := createFlatUC.CalendarSettings{
		MonthsBack:  cfg.Calendar.MonthsBack,
		DaysForward: cfg.Calendar.DaysForward,
		Defaults:    cfg.Calendar.Defaults(),
	}

	createFlatUseCase := createFlatUC.NewUseCase(st.flats, st.calendar, st.tx, metricsCollector, calendarSettings, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		st.flats,
		st.calendar,
		st.bookings,
		availabilityChecker,
		pricingEngine,
		tenantSvc,
		st.tx,
		metricsCollector,
		log,
	)
	editBookingUseCase := editBookingUC.NewUseCase(
		st.flats,
		st.calendar,
		st.bookings,
		availabilityChecker,
		tenantSvc,
		st.tx,
		metricsCollector,
		log,
	)
	updateCalendarUseCase := updateCalendarUC.NewUseCase(st.flats, st.calendar, availabilityChecker, st.tx, log)
	setDiscountsUseCase := setDiscountsUC.NewUseCase(st.flats, st.discounts, st.tx, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(st.flats, st.calendar, availabilityChecker, pricingEngine, st.tx, log)

	// Продление окна календаря по расписанию
	extender := calendarExtender.NewExtender(st.flats, st.calendar, metricsCollector, calendarExtender.Settings{
		MonthsBack:  cfg.Calendar.MonthsBack,
		DaysForward: cfg.Calendar.DaysForward,
		Defaults:    cfg.Calendar.Defaults(),
	}, log)
	if cfg.Calendar.ExtendSchedule != "" {
		if err := extender.Start(cfg.Calendar.ExtendSchedule); err != nil {
			log.Fatal("Failed to schedule calendar extension: %v", err)
		}
		log.Info("Calendar extension scheduled: %q", cfg.Calendar.ExtendSchedule)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты API требуют X-Landlord-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Квартиры ---
	api.HandleFunc("/flats", createFlatHandler.NewHandler(createFlatUseCase, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/flats/{flatId}", getFlatHandler.NewHandler(flatSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/flats/{flatId}", deleteFlatHandler.NewHandler(flatSvc, log).Handle).Methods(http.MethodDelete)

	// --- Календарь и цены ---
	api.HandleFunc("/flats/{flatId}/calendar", getCalendarHandler.NewHandler(calendarSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/flats/{flatId}/calendar", updateCalendarHandler.NewHandler(updateCalendarUseCase, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/flats/{flatId}/discounts", getDiscountsHandler.NewHandler(discountSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/flats/{flatId}/discounts", setDiscountsHandler.NewHandler(setDiscountsUseCase, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/flats/{flatId}/quote", getQuoteHandler.NewHandler(getQuoteUseCase, log).Handle).Methods(http.MethodGet)

	// --- Бронирования и статистика квартиры ---
	api.HandleFunc("/flats/{flatId}/bookings", getFlatBookingsHandler.NewHandler(bookingSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/flats/{flatId}/statistics", getStatisticsHandler.NewHandler(statisticsSvc, log).Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBookingHandler.NewHandler(createBookingUseCase, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBookingHandler.NewHandler(bookingSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", editBookingHandler.NewHandler(editBookingUseCase, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBookingHandler.NewHandler(bookingSvc, log).Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBookingHandler.NewHandler(editBookingUseCase, log).Handle).Methods(http.MethodPatch)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderLandlordID, middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	extender.Stop(shutdownCtx)

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
