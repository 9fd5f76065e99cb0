package server

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of one server.
type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	GeneratedTotal  *prometheus.CounterVec
}

// NewMetrics registers the service collectors, plus the Go and process
// collectors, on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		Registry: reg,
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "outro_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "outro_http_requests_total",
				Help: "Total number of HTTP requests by status code",
			},
			[]string{"method", "path", "code"},
		),
		GeneratedTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "outro_generated_total",
				Help: "Outros generated, by response format",
			},
			[]string{"format"},
		),
	}
}

// Middleware records latency and status for every request.
func (m *Metrics) Middleware(skipper func(c echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper != nil && skipper(c) {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the final status before recording
				c.Error(err)
			}

			// c.Path is the route pattern, which keeps label cardinality bounded
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			code := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			m.RequestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())
			m.RequestsTotal.WithLabelValues(method, path, code).Inc()
			return nil
		}
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
}
