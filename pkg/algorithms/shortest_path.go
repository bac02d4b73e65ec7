package algorithms

import (
	"container/heap"
	"math"

	"github.com/dd0wney/cluso-influence/pkg/graph"
	"github.com/gammazero/deque"
)

// Unreachable is the hop distance recorded for nodes that cannot be reached
// from the start node.
const Unreachable = -1

// Distance is the value type of a single-source distance map: hop counts for
// unweighted graphs, accumulated weights for weighted graphs.
type Distance interface {
	~int | ~float64
}

// ShortestPaths is the result of a single-source shortest path computation.
type ShortestPaths[D Distance] struct {
	Start string
	// Distances has an entry for every node of the graph. Nodes with no path
	// from Start hold Unreachable (hops) or +Inf (weights).
	Distances map[string]D
	// Reachable counts nodes finalized with a finite distance, Start included.
	Reachable int
}

// ShortestPathsUnweighted computes hop distances from start using BFS.
// Neighbors that are not nodes of g are skipped. If start is not a node of g,
// every node is unreachable and Reachable is 0.
func ShortestPathsUnweighted(g graph.Unweighted, start string) ShortestPaths[int] {
	distances := make(map[string]int, len(g))
	for node := range g {
		distances[node] = Unreachable
	}

	result := ShortestPaths[int]{Start: start, Distances: distances}
	if !g.Has(start) {
		return result
	}

	var queue deque.Deque[string]
	distances[start] = 0
	queue.PushBack(start)

	for queue.Len() > 0 {
		current := queue.PopFront()
		result.Reachable++

		for _, neighbor := range g[current] {
			dist, known := distances[neighbor]
			if !known || dist != Unreachable {
				continue
			}
			distances[neighbor] = distances[current] + 1
			queue.PushBack(neighbor)
		}
	}

	return result
}

// pathItem is a priority queue entry. Entries are never updated in place;
// a shorter path pushes a new entry and the old one is discarded on pop.
type pathItem struct {
	node     string
	distance float64
}

// pathQueue is a min-heap ordered by distance, then node ID, so that pops
// are deterministic regardless of map iteration order.
type pathQueue []pathItem

func (q pathQueue) Len() int { return len(q) }
func (q pathQueue) Less(i, j int) bool {
	if q[i].distance != q[j].distance {
		return q[i].distance < q[j].distance
	}
	return q[i].node < q[j].node
}
func (q pathQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pathQueue) Push(x any) {
	*q = append(*q, x.(pathItem))
}

func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[0 : n-1]
	return x
}

// ShortestPathsWeighted computes weighted distances from start using
// Dijkstra's algorithm. Edges with a zero or negative weight are treated as
// absent, as are edges to nodes that are not part of g.
func ShortestPathsWeighted(g graph.Weighted, start string) ShortestPaths[float64] {
	distances := make(map[string]float64, len(g))
	for node := range g {
		distances[node] = math.Inf(1)
	}

	result := ShortestPaths[float64]{Start: start, Distances: distances}
	if !g.Has(start) {
		return result
	}

	distances[start] = 0
	finalized := make(map[string]bool, len(g))

	pq := &pathQueue{{node: start, distance: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pathItem)

		// Stale entry or a node that was never relaxed
		if finalized[current.node] || math.IsInf(current.distance, 1) {
			continue
		}

		finalized[current.node] = true
		result.Reachable++

		for _, edge := range g[current.node] {
			if edge.Weight <= 0 || finalized[edge.To] {
				continue
			}

			best, known := distances[edge.To]
			if !known {
				continue
			}

			candidate := current.distance + float64(edge.Weight)
			if candidate < best {
				distances[edge.To] = candidate
				heap.Push(pq, pathItem{node: edge.To, distance: candidate})
			}
		}
	}

	return result
}
