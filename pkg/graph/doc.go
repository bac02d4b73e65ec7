// Package graph holds the adjacency-map representations scored by the
// influence engine: Unweighted (neighbor IDs only) and Weighted (neighbor ID
// plus an integer weight).
//
// The constructors NewUnweighted and NewWeighted guarantee that every node
// referenced as an edge target is also a key of the map. Graphs are treated
// as immutable once built; all traversals only read them, so a single graph
// may be shared between goroutines.
package graph
