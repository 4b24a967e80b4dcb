// Package metrics exposes Prometheus collectors for the solve pipeline and
// the HTTP surface.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleetplan"

// Metrics owns a private registry so tests and multiple processes never
// collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	solves        *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	planNodes     prometheus.Histogram
	httpRequests  *prometheus.CounterVec
}

// New registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished pipeline runs by engine and status.",
		}, []string{"backend", "status"}),
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of pipeline runs.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		}, []string{"backend"}),
		planNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_nodes",
			Help:      "Node count of solved plans, depot included.",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 9),
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
	}

	m.registry.MustRegister(
		m.solves,
		m.solveDuration,
		m.planNodes,
		m.httpRequests,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveSolve implements service.SolveRecorder.
func (m *Metrics) ObserveSolve(backend string, status entity.SolveStatus, duration time.Duration, nodes int) {
	m.solves.WithLabelValues(backend, status.String()).Inc()
	m.solveDuration.WithLabelValues(backend).Observe(duration.Seconds())
	m.planNodes.Observe(float64(nodes))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware counts requests by matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			m.httpRequests.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(statusCode(c, err))).Inc()

			return err
		}
	}
}

// statusCode predicts the code the error handler will write, since it runs
// after the middleware chain returns.
func statusCode(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	return http.StatusInternalServerError
}
