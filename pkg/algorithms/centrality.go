package algorithms

import (
	"math"

	"github.com/dd0wney/cluso-influence/pkg/graph"
)

// ClosenessScore converts a single-source distance map into a normalized
// closeness centrality in [0, 1].
//
// reachable is the number of nodes with a finite distance including the
// source, total is the number of nodes in the whole graph. Raw closeness
// (reachable-1)/sum is scaled by (reachable-1)/(total-1), the fraction of the
// graph the source actually reaches, so a node confined to a small component
// scores low even when its local distances are short.
func ClosenessScore[D Distance](distances map[string]D, reachable, total int) float64 {
	if total <= 1 || reachable <= 1 {
		return 0.0
	}

	sumDistances := 0.0
	for _, d := range distances {
		dist := float64(d)
		// Skips the source (0), Unreachable (-1) and +Inf
		if dist > 0 && !math.IsInf(dist, 1) {
			sumDistances += dist
		}
	}

	if sumDistances == 0 {
		return 0.0
	}

	closeness := float64(reachable-1) / sumDistances
	normalizationFactor := float64(reachable-1) / float64(total-1)

	return clampUnit(closeness * normalizationFactor)
}

// InfluenceScoreUnweighted returns the normalized closeness of node in g
// using hop distances.
func InfluenceScoreUnweighted(g graph.Unweighted, node string) float64 {
	paths := ShortestPathsUnweighted(g, node)
	return ClosenessScore(paths.Distances, paths.Reachable, len(g))
}

// InfluenceScoreWeighted returns the normalized closeness of node in g using
// weighted distances.
func InfluenceScoreWeighted(g graph.Weighted, node string) float64 {
	paths := ShortestPathsWeighted(g, node)
	return ClosenessScore(paths.Distances, paths.Reachable, len(g))
}

func clampUnit(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
