package graph

import "fmt"

// IssueKind classifies a structural problem found by Validate.
type IssueKind string

const (
	// IssueMissingTarget marks an edge whose target is not a node of the graph.
	IssueMissingTarget IssueKind = "missing_target"
	// IssueNonPositiveWeight marks a weighted edge that traversal will ignore.
	IssueNonPositiveWeight IssueKind = "non_positive_weight"
)

// Issue describes a single offending edge. Issues are informational:
// traversals skip the offending edges rather than fail.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	Weight int       `json:"weight,omitempty"`
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueNonPositiveWeight:
		return fmt.Sprintf("%s: %s -> %s (weight %d)", i.Kind, i.From, i.To, i.Weight)
	default:
		return fmt.Sprintf("%s: %s -> %s", i.Kind, i.From, i.To)
	}
}

// Validate reports edges pointing at unknown nodes, in edge-list order.
func (g Unweighted) Validate() []Issue {
	var issues []Issue
	for _, entry := range g.Edges() {
		if !g.Has(entry.To) {
			issues = append(issues, Issue{Kind: IssueMissingTarget, From: entry.From, To: entry.To})
		}
	}
	return issues
}

// Validate reports edges pointing at unknown nodes and edges with a zero or
// negative weight, in edge-list order. An edge can yield both issues.
func (g Weighted) Validate() []Issue {
	var issues []Issue
	for _, entry := range g.Edges() {
		if !g.Has(entry.To) {
			issues = append(issues, Issue{Kind: IssueMissingTarget, From: entry.From, To: entry.To})
		}
		if entry.Weight <= 0 {
			issues = append(issues, Issue{
				Kind:   IssueNonPositiveWeight,
				From:   entry.From,
				To:     entry.To,
				Weight: entry.Weight,
			})
		}
	}
	return issues
}
