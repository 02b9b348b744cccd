// Package metrics holds the prometheus collectors for the sizing API and solver
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector provides application metrics collection
type Collector struct {
	reg *prometheus.Registry

	// API
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec

	// calculations
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
	BisectionIterations prometheus.Histogram
	UnconvergedTotal    prometheus.Counter
}

// NewCollector registers every collector on a fresh registry under namespace
// withRuntime adds the Go and process collectors, which the API wants and tests do not
func NewCollector(namespace string, withRuntime bool) *Collector {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	f := promauto.With(reg)
	return &Collector{
		reg: reg,

		APIRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by route, method, and status",
			},
			[]string{"route", "method", "status"},
		),

		APIRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"route"},
		),

		CalculationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculations_total",
				Help:      "Sizing calculations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		CalculationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "calculation_duration_seconds",
				Help:      "Time spent inside a sizing operation",
				Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
			},
			[]string{"operation"},
		),

		BisectionIterations: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bisection_iterations",
				Help:      "Bisection steps taken per beta search",
				Buckets:   []float64{5, 10, 15, 20, 25, 30, 40, 60, 100},
			},
		),

		UnconvergedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bisection_unconverged_total",
				Help:      "Beta searches that hit the iteration cap before the tolerance",
			},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Handler serves the registry in the prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(op string) *Timer {
	return &Timer{start: time.Now(), observer: c.CalculationDuration.WithLabelValues(op)}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	d := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(d.Seconds())
	}
	return d
}

// RecordAPIRequest matches middleware.Observer so it can be handed to the access log
func (c *Collector) RecordAPIRequest(method, route string, status int, elapsed time.Duration) {
	c.APIRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.APIRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordCalculation counts one operation outcome ("ok" or an error code name)
func (c *Collector) RecordCalculation(op, outcome string) {
	c.CalculationsTotal.WithLabelValues(op, outcome).Inc()
}

// RecordBisection records the iteration count and whether the search converged
func (c *Collector) RecordBisection(iterations int, converged bool) {
	c.BisectionIterations.Observe(float64(iterations))
	if !converged {
		c.UnconvergedTotal.Inc()
	}
}
