package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initScoringMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "influence_runs_total",
			Help: "Total number of influence ranking runs",
		},
		[]string{"variant", "status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "influence_run_duration_seconds",
			Help:    "Influence ranking run duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"variant"},
	)

	r.NodesScored = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "influence_nodes_scored_total",
			Help: "Total number of nodes assigned an influence score",
		},
		[]string{"variant"},
	)

	r.ReachableNodes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "influence_reachable_nodes",
			Help:    "Number of nodes reached from each scored source, source included",
			Buckets: []float64{1, 2, 5, 10, 100, 1000, 10000},
		},
		[]string{"variant"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "influence_graph_nodes",
			Help: "Number of nodes in the most recently scored graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "influence_graph_edges",
			Help: "Number of directed edges in the most recently scored graph",
		},
	)

	r.SkippedEdges = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "influence_skipped_edges_total",
			Help: "Edges ignored by traversal, by reason",
		},
		[]string{"reason"},
	)
}

func (r *Registry) initWorkerMetrics() {
	r.WorkerPanicsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "influence_worker_panics_total",
			Help: "Total number of panics recovered inside scoring workers",
		},
	)
}
