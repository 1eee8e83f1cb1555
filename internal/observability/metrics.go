package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	registerOnce sync.Once

	conversions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phaethon",
			Name:      "convert_total",
			Help:      "Total conversions resolved through the fluent builder.",
		},
		[]string{"dimension", "mode", "status"},
	)
	conversionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phaethon",
			Name:      "convert_duration_seconds",
			Help:      "Conversion resolution duration in seconds.",
			Buckets:   []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1},
		},
		[]string{"dimension", "mode"},
	)
	axiomViolations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phaethon",
			Name:      "axiom_violations_total",
			Help:      "Magnitudes rejected by a bound stage.",
		},
		[]string{"dimension"},
	)
	algebra = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phaethon",
			Name:      "algebra_total",
			Help:      "Descriptor algebra results by operation and outcome.",
		},
		[]string{"op", "result"},
	)
	registryDescriptors = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "phaethon",
			Name:      "registry_descriptors",
			Help:      "Descriptors held by the most recently updated registry.",
		},
	)
)

// Collectors returns every phaethon collector, for registration on a
// caller-owned registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{conversions, conversionDuration, axiomViolations, algebra, registryDescriptors}
}

// RegisterMetrics registers the collectors on the default registry once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Collectors()...)
	})
}

func RecordConversion(dimension, mode string, duration time.Duration, err error) {
	RegisterMetrics()
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	conversions.WithLabelValues(dimension, mode, status).Inc()
	conversionDuration.WithLabelValues(dimension, mode).Observe(duration.Seconds())
}

func RecordAxiomViolation(dimension string) {
	RegisterMetrics()
	axiomViolations.WithLabelValues(dimension).Inc()
}

// RecordAlgebra counts one mul/div/pow outcome: canonical, cached or anonymous.
func RecordAlgebra(op, result string) {
	RegisterMetrics()
	algebra.WithLabelValues(op, result).Inc()
}

func SetRegistrySize(n int) {
	RegisterMetrics()
	registryDescriptors.Set(float64(n))
}
