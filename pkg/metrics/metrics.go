package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordRun records a completed or failed ranking run
func (r *Registry) RecordRun(variant, status string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(variant, status).Inc()
	r.RunDuration.WithLabelValues(variant).Observe(duration.Seconds())
}

// RecordNodeScored records one scored source node and how far it reached
func (r *Registry) RecordNodeScored(variant string, reachable int) {
	r.NodesScored.WithLabelValues(variant).Inc()
	r.ReachableNodes.WithLabelValues(variant).Observe(float64(reachable))
}

// SetGraphSize updates the graph size gauges
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// RecordSkippedEdges adds count edges ignored for reason
func (r *Registry) RecordSkippedEdges(reason string, count int) {
	if count <= 0 {
		return
	}
	r.SkippedEdges.WithLabelValues(reason).Add(float64(count))
}

// RecordWorkerPanic counts a recovered worker panic
func (r *Registry) RecordWorkerPanic() {
	r.WorkerPanicsTotal.Inc()
}

// WriteTextfile writes every gathered metric to path in the Prometheus text
// exposition format, for pickup by the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
