package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics holds the serve-mode Prometheus instruments on a private
// registry so concurrent servers and tests never collide.
type Metrics struct {
	registry *prometheus.Registry
	logger   *zap.Logger

	requestsTotal *prometheus.CounterVec
	requestDur    *prometheus.HistogramVec
	parseDur      prometheus.Histogram
	recordsTotal  prometheus.Counter
}

// NewMetrics creates and registers the serve-mode instruments.
func NewMetrics(logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		logger:   logger,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routefsm_http_requests_total",
			Help: "Total HTTP requests by method, endpoint, and status code.",
		}, []string{"method", "endpoint", "status"}),
		requestDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "routefsm_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by method and endpoint.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"method", "endpoint"}),
		parseDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routefsm_parse_duration_seconds",
			Help:    "Template extraction run duration in seconds.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		recordsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routefsm_records_parsed_total",
			Help: "Total route records extracted across all requests.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.requestsTotal, m.requestDur, m.parseDur, m.recordsTotal,
	} {
		if err := m.registry.Register(c); err != nil {
			m.logger.Warn("failed to register collector", zap.Error(err))
		}
	}
	return m
}

// Middleware returns an Echo middleware that records HTTP metrics.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// Fixed route set, so c.Path() is cardinality-safe as-is.
			endpoint := c.Path()
			if endpoint == "" {
				endpoint = "/"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.requestsTotal.WithLabelValues(method, endpoint, status).Inc()
			m.requestDur.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveParse records one extraction run's duration.
func (m *Metrics) ObserveParse(d time.Duration) {
	m.parseDur.Observe(d.Seconds())
}

// ObserveRecords adds to the extracted-record counter.
func (m *Metrics) ObserveRecords(n int) {
	m.recordsTotal.Add(float64(n))
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
