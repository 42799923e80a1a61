package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the optimizer.
	Registry = prometheus.NewRegistry()
	// Optimizations counts optimization calls by algorithm and outcome.
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_optimizations_total", Help: "Optimization calls by algorithm and status."},
		[]string{"algorithm", "status"},
	)
	// OptimizationDuration records wall-clock optimization time in seconds.
	OptimizationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "route_optimization_duration_seconds", Help: "Optimization wall-clock time in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"algorithm"},
	)
	// PersistFailures counts best-effort route saves that failed.
	PersistFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "route_persist_failures_total", Help: "Route persistence failures (non-fatal)."},
	)
)

// RegisterDefault registers collectors to the dedicated registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(OptimizationDuration)
		Registry.MustRegister(PersistFailures)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
