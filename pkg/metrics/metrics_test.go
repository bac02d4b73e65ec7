package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.RunsTotal == nil {
		t.Error("RunsTotal not initialized")
	}
	if r.ReachableNodes == nil {
		t.Error("ReachableNodes not initialized")
	}
	if r.SkippedEdges == nil {
		t.Error("SkippedEdges not initialized")
	}
	if r.WorkerPanicsTotal == nil {
		t.Error("WorkerPanicsTotal not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestRecordRun(t *testing.T) {
	r := NewRegistry()

	r.RecordRun("weighted", "success", 10*time.Millisecond)
	r.RecordRun("weighted", "success", 20*time.Millisecond)
	r.RecordRun("weighted", "error", 5*time.Millisecond)

	success, err := r.RunsTotal.GetMetricWithLabelValues("weighted", "success")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, success); got != 2 {
		t.Errorf("success runs = %v, want 2", got)
	}

	failed, _ := r.RunsTotal.GetMetricWithLabelValues("weighted", "error")
	if got := counterValue(t, failed); got != 1 {
		t.Errorf("error runs = %v, want 1", got)
	}
}

func TestRecordNodeScored(t *testing.T) {
	r := NewRegistry()

	r.RecordNodeScored("unweighted", 4)
	r.RecordNodeScored("unweighted", 1)

	scored, _ := r.NodesScored.GetMetricWithLabelValues("unweighted")
	if got := counterValue(t, scored); got != 2 {
		t.Errorf("nodes scored = %v, want 2", got)
	}

	observer, err := r.ReachableNodes.GetMetricWithLabelValues("unweighted")
	if err != nil {
		t.Fatalf("Failed to get histogram: %v", err)
	}
	var metric dto.Metric
	if err := observer.(prometheus.Metric).Write(&metric); err != nil {
		t.Fatalf("Failed to write histogram: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("sample count = %d, want 2", metric.Histogram.GetSampleCount())
	}
	if metric.Histogram.GetSampleSum() != 5 {
		t.Errorf("sample sum = %v, want 5", metric.Histogram.GetSampleSum())
	}
}

func TestRecordSkippedEdges(t *testing.T) {
	r := NewRegistry()

	r.RecordSkippedEdges("non_positive_weight", 3)
	r.RecordSkippedEdges("non_positive_weight", 0)
	r.RecordSkippedEdges("missing_target", -1)

	counter, _ := r.SkippedEdges.GetMetricWithLabelValues("non_positive_weight")
	if got := counterValue(t, counter); got != 3 {
		t.Errorf("skipped edges = %v, want 3", got)
	}
}

func TestSetGraphSizeAndExport(t *testing.T) {
	r := NewRegistry()
	r.SetGraphSize(10, 22)
	r.RecordWorkerPanic()

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	found := map[string]float64{}
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "influence_") {
			t.Errorf("unexpected metric name %s", family.GetName())
		}
		for _, m := range family.GetMetric() {
			if m.Gauge != nil {
				found[family.GetName()] = m.Gauge.GetValue()
			}
			if m.Counter != nil && family.GetName() == "influence_worker_panics_total" {
				found[family.GetName()] = m.Counter.GetValue()
			}
		}
	}

	if found["influence_graph_nodes"] != 10 {
		t.Errorf("graph nodes = %v, want 10", found["influence_graph_nodes"])
	}
	if found["influence_graph_edges"] != 22 {
		t.Errorf("graph edges = %v, want 22", found["influence_graph_edges"])
	}
	if found["influence_worker_panics_total"] != 1 {
		t.Errorf("worker panics = %v, want 1", found["influence_worker_panics_total"])
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.RecordNodeScored("weighted", 4)
	r.RecordNodeScored("weighted", 1)
	r.SetGraphSize(10, 17)

	path := filepath.Join(t.TempDir(), "influence.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read metrics file: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		`influence_nodes_scored_total{variant="weighted"} 2`,
		"influence_graph_nodes 10",
		"influence_graph_edges 17",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics file missing %q", want)
		}
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	r := NewRegistry()
	path := filepath.Join(t.TempDir(), "missing", "influence.prom")
	if err := r.WriteTextfile(path); err == nil {
		t.Error("WriteTextfile into a missing directory should fail")
	}
}
