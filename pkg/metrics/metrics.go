package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов Prometheus сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec
	TxTotal           *prometheus.CounterVec

	// Бизнес-метрики
	BookingsWritten    *prometheus.CounterVec
	BookingConflicts   *prometheus.CounterVec
	CalendarDaysSeeded *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре (для promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),
		TxTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_transactions_total",
			Help:        "Total number of transactions by isolation level and outcome",
			ConstLabels: constLabels,
		}, []string{"isolation", "outcome"}),
		BookingsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_written_total",
			Help:        "Bookings created or edited",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		BookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Booking writes rejected by availability or minimum stay",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		CalendarDaysSeeded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_days_seeded_total",
			Help:        "Calendar days created by flat creation or window extension",
			ConstLabels: constLabels,
		}, []string{"trigger"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.TxTotal,
		m.BookingsWritten,
		m.BookingConflicts,
		m.CalendarDaysSeeded,
	)

	return m
}

// ObserveBookingWritten учитывает записанное бронирование (nil-safe)
func (m *Metrics) ObserveBookingWritten(operation, status string) {
	if m == nil {
		return
	}
	m.BookingsWritten.WithLabelValues(operation, status).Inc()
}

// ObserveBookingConflict учитывает отклоненную запись бронирования (nil-safe)
func (m *Metrics) ObserveBookingConflict(reason string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(reason).Inc()
}

// ObserveDaysSeeded учитывает созданные дни календаря (nil-safe)
func (m *Metrics) ObserveDaysSeeded(trigger string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.CalendarDaysSeeded.WithLabelValues(trigger).Add(float64(n))
}
