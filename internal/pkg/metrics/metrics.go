// Package metrics exposes Prometheus instruments for the HTTP API and the
// order audit job.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ordering"

// Audit run results.
const (
	AuditPassed = "passed"
	AuditFailed = "inconsistent"
	AuditError  = "error"
)

type Metrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	AuditRuns     *prometheus.CounterVec
	AuditFindings prometheus.Counter
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"method", "route"}),
		AuditRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "runs_total",
			Help:      "Order audit runs by result.",
		}, []string{"result"}),
		AuditFindings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "findings_total",
			Help:      "Inconsistent orders found by the audit.",
		}),
	}

	reg.MustRegister(m.Requests, m.LatencyMS, m.AuditRuns, m.AuditFindings)
	return m
}

// Middleware records the count and latency of every request by matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(method, route).Observe(float64(time.Since(start).Microseconds()) / 1000)
			return err
		}
	}
}

// ObserveAudit records one audit run.
func (m *Metrics) ObserveAudit(findings int, err error) {
	switch {
	case err != nil:
		m.AuditRuns.WithLabelValues(AuditError).Inc()
	case findings > 0:
		m.AuditRuns.WithLabelValues(AuditFailed).Inc()
		m.AuditFindings.Add(float64(findings))
	default:
		m.AuditRuns.WithLabelValues(AuditPassed).Inc()
	}
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
