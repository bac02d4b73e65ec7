// Package algorithms computes influence scores: normalized closeness
// centrality over the directed graphs of package graph.
//
// Two single-source shortest path engines feed the scorer:
//
//   - ShortestPathsUnweighted: breadth-first search, hop distances.
//   - ShortestPathsWeighted: Dijkstra with a binary heap ordered by
//     (distance, node ID). Edges with a zero or negative weight are ignored.
//
// ClosenessScore turns one distance map into a score in [0, 1]:
//
//	closeness = (n - 1) / sum(distances)
//	score     = closeness * (n - 1) / (N - 1)
//
// where n is the number of nodes the source reaches (itself included) and N
// is the size of the graph. Sources that reach nothing, and graphs with at
// most one node, score 0.
//
// RankUnweighted and RankWeighted score every node and return them ordered by
// score. They can spread the per-node work over a worker pool; every engine
// call allocates its own distance map and queue, so graphs are only read.
package algorithms
