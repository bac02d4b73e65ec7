package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the influence engine
type Registry struct {
	// Scoring run metrics
	RunsTotal      *prometheus.CounterVec
	RunDuration    *prometheus.HistogramVec
	NodesScored    *prometheus.CounterVec
	ReachableNodes *prometheus.HistogramVec

	// Graph metrics
	GraphNodes   prometheus.Gauge
	GraphEdges   prometheus.Gauge
	SkippedEdges *prometheus.CounterVec

	// Worker pool metrics
	WorkerPanicsTotal prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initScoringMetrics()
	r.initGraphMetrics()
	r.initWorkerMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
