// Package metrics holds the Prometheus collectors for the service.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the set of collectors registered for one service instance.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec

	dbPoolOpen  *prometheus.GaugeVec
	dbPoolIdle  *prometheus.GaugeVec
	dbPoolInUse *prometheus.GaugeVec
}

// New registers and returns the collectors on the default registry.
func New(service string) *Metrics {
	return &Metrics{
		service: service,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		dbPoolOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Open connections in the database pool",
		}, []string{"service"}),

		dbPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Idle connections in the database pool",
		}, []string{"service"}),

		dbPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Connections currently in use in the database pool",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records one executed database query.
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.service, operation).Inc()
	}
}

// SetDBPoolStats publishes a snapshot of the connection pool state.
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbPoolOpen.WithLabelValues(m.service).Set(float64(stats.OpenConnections))
	m.dbPoolIdle.WithLabelValues(m.service).Set(float64(stats.Idle))
	m.dbPoolInUse.WithLabelValues(m.service).Set(float64(stats.InUse))
}
