package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the compile-path collectors on a dedicated registry, so
// embedding applications don't collide with the default global registry.
type Metrics struct {
	registry *prometheus.Registry

	compilations     *prometheus.CounterVec
	compileDuration  prometheus.Histogram
	complexesEmitted prometheus.Counter
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		compilations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nuskell_compilations_total",
				Help: "CRN compilations by outcome.",
			},
			[]string{"outcome"},
		),
		compileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nuskell_compile_duration_seconds",
				Help:    "Wall-clock duration of CRN compilations.",
				Buckets: prometheus.DefBuckets,
			},
		),
		complexesEmitted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nuskell_complexes_emitted_total",
				Help: "Total complexes emitted by successful compilations.",
			},
		),
	}
	m.registry.MustRegister(m.compilations, m.compileDuration, m.complexesEmitted)
	return m
}

// Registry returns the underlying registry for exposition.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveCompile records one compilation attempt.
func (m *Metrics) ObserveCompile(elapsed time.Duration, complexes int, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.compilations.WithLabelValues(outcome).Inc()
	m.compileDuration.Observe(elapsed.Seconds())
	if err == nil {
		m.complexesEmitted.Add(float64(complexes))
	}
}
