package graph

import (
	"sort"
)

// Edge is an outbound weighted edge. Weights are expected to be positive;
// non-positive weights are kept as-is and ignored by weighted traversals.
type Edge struct {
	To     string `json:"to" yaml:"to"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Unweighted maps a node ID to its ordered outbound neighbors.
// Every edge has an implicit weight of 1.
type Unweighted map[string][]string

// Weighted maps a node ID to its ordered outbound weighted edges.
type Weighted map[string][]Edge

// EdgeListEntry is a single directed edge flattened for reporting.
type EdgeListEntry struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// NewUnweighted copies adjacency and registers every referenced neighbor as
// a node, so sinks appear with an empty adjacency list.
func NewUnweighted(adjacency map[string][]string) Unweighted {
	g := make(Unweighted, len(adjacency))
	for node, neighbors := range adjacency {
		g[node] = append([]string(nil), neighbors...)
	}

	for _, neighbors := range adjacency {
		for _, neighbor := range neighbors {
			if _, ok := g[neighbor]; !ok {
				g[neighbor] = []string{}
			}
		}
	}

	return g
}

// NewWeighted copies adjacency and registers every referenced neighbor as a
// node. Weights are not validated here; see Validate.
func NewWeighted(adjacency map[string][]Edge) Weighted {
	g := make(Weighted, len(adjacency))
	for node, edges := range adjacency {
		g[node] = append([]Edge(nil), edges...)
	}

	for _, edges := range adjacency {
		for _, edge := range edges {
			if _, ok := g[edge.To]; !ok {
				g[edge.To] = []Edge{}
			}
		}
	}

	return g
}

// Has reports whether id is a node of the graph.
func (g Unweighted) Has(id string) bool {
	_, ok := g[id]
	return ok
}

// Nodes returns all node IDs in ascending order.
func (g Unweighted) Nodes() []string {
	return sortedKeys(g)
}

// EdgeCount returns the number of directed edges.
func (g Unweighted) EdgeCount() int {
	count := 0
	for _, neighbors := range g {
		count += len(neighbors)
	}
	return count
}

// Edges returns the edge list sorted by source, then target.
func (g Unweighted) Edges() []EdgeListEntry {
	entries := make([]EdgeListEntry, 0, g.EdgeCount())
	for node, neighbors := range g {
		for _, neighbor := range neighbors {
			entries = append(entries, EdgeListEntry{From: node, To: neighbor, Weight: 1})
		}
	}
	sortEdgeList(entries)
	return entries
}

// WithUnitWeights converts g into a weighted graph where every edge weighs 1.
func (g Unweighted) WithUnitWeights() Weighted {
	w := make(Weighted, len(g))
	for node, neighbors := range g {
		edges := make([]Edge, len(neighbors))
		for i, neighbor := range neighbors {
			edges[i] = Edge{To: neighbor, Weight: 1}
		}
		w[node] = edges
	}
	return w
}

// Has reports whether id is a node of the graph.
func (g Weighted) Has(id string) bool {
	_, ok := g[id]
	return ok
}

// Nodes returns all node IDs in ascending order.
func (g Weighted) Nodes() []string {
	return sortedKeys(g)
}

// EdgeCount returns the number of directed edges, including edges whose
// weight makes them unusable for traversal.
func (g Weighted) EdgeCount() int {
	count := 0
	for _, edges := range g {
		count += len(edges)
	}
	return count
}

// Edges returns the edge list sorted by source, then target.
func (g Weighted) Edges() []EdgeListEntry {
	entries := make([]EdgeListEntry, 0, g.EdgeCount())
	for node, edges := range g {
		for _, edge := range edges {
			entries = append(entries, EdgeListEntry{From: node, To: edge.To, Weight: edge.Weight})
		}
	}
	sortEdgeList(entries)
	return entries
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortEdgeList(entries []EdgeListEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].From != entries[j].From {
			return entries[i].From < entries[j].From
		}
		return entries[i].To < entries[j].To
	})
}
