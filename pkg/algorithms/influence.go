package algorithms

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dd0wney/cluso-influence/pkg/graph"
	"github.com/dd0wney/cluso-influence/pkg/logging"
	"github.com/dd0wney/cluso-influence/pkg/metrics"
	"github.com/dd0wney/cluso-influence/pkg/parallel"
	"github.com/google/uuid"
)

// Variant selects the shortest path engine used for scoring
type Variant string

const (
	VariantUnweighted Variant = "unweighted"
	VariantWeighted   Variant = "weighted"
)

// ErrUnknownVariant is returned by ParseVariant for unsupported names
var ErrUnknownVariant = errors.New("unknown graph variant")

// ParseVariant converts a case-insensitive name into a Variant
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantUnweighted, VariantWeighted:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// InfluenceOptions configures a ranking run
type InfluenceOptions struct {
	// Workers > 1 scores nodes concurrently; the result is identical
	Workers int
	Logger  logging.Logger
	// Metrics may be nil
	Metrics *metrics.Registry
}

// DefaultInfluenceOptions returns a sequential, silent configuration
func DefaultInfluenceOptions() InfluenceOptions {
	return InfluenceOptions{
		Workers: 1,
		Logger:  logging.NewNopLogger(),
	}
}

// RankedNode is a node with its influence score
type RankedNode struct {
	NodeID    string  `json:"node"`
	Score     float64 `json:"score"`
	Reachable int     `json:"reachable"`
}

// InfluenceResult holds the influence score of every node in a graph
type InfluenceResult struct {
	RunID     string             `json:"run_id"`
	Variant   Variant            `json:"variant"`
	NodeCount int                `json:"node_count"`
	Scores    map[string]float64 `json:"scores"`
	// Ranked is sorted by score descending, then node ID ascending
	Ranked []RankedNode `json:"ranked"`
}

// Top returns the n highest ranked nodes, or all of them when n <= 0
func (r *InfluenceResult) Top(n int) []RankedNode {
	if n <= 0 || n >= len(r.Ranked) {
		return r.Ranked
	}
	return r.Ranked[:n]
}

// scoreFunc computes the score and reach of a single source node
type scoreFunc func(node string) (score float64, reachable int)

// RankUnweighted scores every node of g with hop-count closeness
func RankUnweighted(ctx context.Context, g graph.Unweighted, opts InfluenceOptions) (*InfluenceResult, error) {
	total := len(g)
	score := func(node string) (float64, int) {
		paths := ShortestPathsUnweighted(g, node)
		return ClosenessScore(paths.Distances, paths.Reachable, total), paths.Reachable
	}
	return rank(ctx, VariantUnweighted, g.Nodes(), g.EdgeCount(), g.Validate(), score, opts)
}

// RankWeighted scores every node of g with weighted closeness
func RankWeighted(ctx context.Context, g graph.Weighted, opts InfluenceOptions) (*InfluenceResult, error) {
	total := len(g)
	score := func(node string) (float64, int) {
		paths := ShortestPathsWeighted(g, node)
		return ClosenessScore(paths.Distances, paths.Reachable, total), paths.Reachable
	}
	return rank(ctx, VariantWeighted, g.Nodes(), g.EdgeCount(), g.Validate(), score, opts)
}

func rank(
	ctx context.Context,
	variant Variant,
	nodes []string,
	edgeCount int,
	issues []graph.Issue,
	score scoreFunc,
	opts InfluenceOptions,
) (*InfluenceResult, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}

	runID := uuid.NewString()
	logger := opts.Logger.With(logging.RunID(runID), logging.Variant(string(variant)))
	timer := logging.StartTimer(logger, "influence ranking completed", logging.Count(len(nodes)), logging.Workers(opts.Workers))

	reportIssues(logger, opts.Metrics, issues)
	if opts.Metrics != nil {
		opts.Metrics.SetGraphSize(len(nodes), edgeCount)
	}

	ranked := make([]RankedNode, len(nodes))
	scoreInto := func(i int) {
		s, reachable := score(nodes[i])
		ranked[i] = RankedNode{NodeID: nodes[i], Score: s, Reachable: reachable}

		logger.Debug("node scored", logging.Node(nodes[i]), logging.Score(s), logging.Reachable(reachable))
		if opts.Metrics != nil {
			opts.Metrics.RecordNodeScored(string(variant), reachable)
		}
	}

	var err error
	if opts.Workers > 1 && len(nodes) > 1 {
		err = scoreParallel(ctx, len(nodes), opts.Workers, logger, opts.Metrics, scoreInto)
	} else {
		err = scoreSequential(ctx, len(nodes), scoreInto)
	}

	if err != nil {
		timer.EndError(err)
		if opts.Metrics != nil {
			opts.Metrics.RecordRun(string(variant), "error", timer.Elapsed())
		}
		return nil, fmt.Errorf("influence ranking %s: %w", variant, err)
	}

	result := &InfluenceResult{
		RunID:     runID,
		Variant:   variant,
		NodeCount: len(nodes),
		Scores:    make(map[string]float64, len(nodes)),
		Ranked:    ranked,
	}
	for _, rn := range ranked {
		result.Scores[rn.NodeID] = rn.Score
	}
	sortRanked(result.Ranked)

	timer.End()
	if opts.Metrics != nil {
		opts.Metrics.RecordRun(string(variant), "success", timer.Elapsed())
	}

	return result, nil
}

func scoreSequential(ctx context.Context, n int, scoreInto func(int)) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		scoreInto(i)
	}
	return nil
}

// scoreParallel fans node indexes out over a worker pool. Each task writes
// only its own slot of the result slice.
func scoreParallel(ctx context.Context, n, workers int, logger logging.Logger, reg *metrics.Registry, scoreInto func(int)) error {
	if workers > n {
		workers = n
	}

	poolOpts := []parallel.Option{parallel.WithLogger(logger)}
	if reg != nil {
		poolOpts = append(poolOpts, parallel.WithPanicHook(func(any) { reg.RecordWorkerPanic() }))
	}

	pool, err := parallel.NewWorkerPool(workers, poolOpts...)
	if err != nil {
		return err
	}

	logger.Debug("worker pool started", logging.Workers(pool.Workers()))

	completed := make([]bool, n)
	err = submitNodes(ctx, pool, n, func(idx int) {
		if ctx.Err() != nil {
			return
		}
		scoreInto(idx)
		completed[idx] = true
	})
	pool.Wait()
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	for i, done := range completed {
		if !done {
			return fmt.Errorf("node %d was not scored", i)
		}
	}
	return nil
}

// submitNodes queues one task per node index until ctx is cancelled
func submitNodes(ctx context.Context, pool *parallel.WorkerPool, n int, task func(int)) error {
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return nil
		}
		idx := i
		if !pool.Submit(func() { task(idx) }) {
			return fmt.Errorf("%w: node %d not submitted", parallel.ErrPoolClosed, idx)
		}
	}
	return nil
}

// issueKinds fixes the order in which skipped edge kinds are reported
var issueKinds = []graph.IssueKind{graph.IssueMissingTarget, graph.IssueNonPositiveWeight}

func reportIssues(logger logging.Logger, reg *metrics.Registry, issues []graph.Issue) {
	counts := make(map[graph.IssueKind]int)
	for _, issue := range issues {
		counts[issue.Kind]++
		logger.Debug("edge ignored by traversal",
			logging.String("reason", string(issue.Kind)),
			logging.String("from", issue.From),
			logging.String("to", issue.To),
		)
	}

	for _, kind := range issueKinds {
		count := counts[kind]
		if count == 0 {
			continue
		}
		logger.Warn("graph has edges that traversal will skip", logging.String("reason", string(kind)), logging.Count(count))
		if reg != nil {
			reg.RecordSkippedEdges(string(kind), count)
		}
	}
}

func sortRanked(ranked []RankedNode) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].NodeID < ranked[j].NodeID
	})
}
