package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	optimizeLatency  *prometheus.HistogramVec
	optimizeOutcomes *prometheus.CounterVec
	conflictsTotal   prometheus.Counter
	fallbackTotal    prometheus.Counter
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.HistogramVec, *prometheus.CounterVec, prometheus.Counter, prometheus.Counter) {
	lat := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "optimize_duration_seconds",
			Help:    "Latency of timeline optimization calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)
	out := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimizations_total",
			Help: "Number of optimization calls by backend and outcome",
		},
		[]string{"backend", "status"},
	)
	con := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_conflicts_total",
			Help: "Number of scheduling conflicts across all calls",
		},
	)
	fb := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "native_fallback_total",
			Help: "Number of calls that fell back to the pure Go optimizer",
		},
	)
	return lat, out, con, fb
}

func init() {
	optimizeLatency, optimizeOutcomes, conflictsTotal, fallbackTotal = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers engine metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(optimizeLatency, optimizeOutcomes, conflictsTotal, fallbackTotal)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	optimizeLatency, optimizeOutcomes, conflictsTotal, fallbackTotal = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
