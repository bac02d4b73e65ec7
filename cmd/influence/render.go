package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/cluso-influence/pkg/algorithms"
	"github.com/dd0wney/cluso-influence/pkg/graph"
)

const ruleWidth = 52

type styles struct {
	title lipgloss.Style
	rule  lipgloss.Style
	node  lipgloss.Style
	score lipgloss.Style
	note  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		rule:  r.NewStyle().Foreground(lipgloss.Color("#666666")),
		node:  r.NewStyle().Width(15),
		score: r.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		note:  r.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true),
	}
}

// jsonReport is the machine-readable output of a run
type jsonReport struct {
	Nodes  int                         `json:"nodes"`
	Edges  []graph.EdgeListEntry       `json:"edges"`
	Result *algorithms.InfluenceResult `json:"result"`
	Top    []algorithms.RankedNode     `json:"top"`
}

func renderJSON(w io.Writer, edges []graph.EdgeListEntry, result *algorithms.InfluenceResult, top int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Nodes:  result.NodeCount,
		Edges:  edges,
		Result: result,
		Top:    result.Top(top),
	})
}

func renderTable(w io.Writer, edges []graph.EdgeListEntry, result *algorithms.InfluenceResult, top int) {
	st := newStyles(w)
	weighted := result.Variant == algorithms.VariantWeighted
	rule := st.rule.Render(strings.Repeat("-", ruleWidth))

	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("Edge list of %s social network", result.Variant)))
	if weighted {
		fmt.Fprintln(w, "Node1 -> Node2 (Weight)")
	} else {
		fmt.Fprintln(w, "Node1 -> Node2")
	}
	for _, e := range edges {
		if weighted {
			fmt.Fprintf(w, "%s -> %s (%d)\n", e.From, e.To, e.Weight)
		} else {
			fmt.Fprintf(w, "%s -> %s\n", e.From, e.To)
		}
	}
	fmt.Fprintf(w, "Graph has %d nodes and %d edges.\n\n", result.NodeCount, len(edges))

	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("%s influence scores (normalized closeness 0-1)", titleCase(string(result.Variant)))))
	fmt.Fprintln(w, rule)
	for _, rn := range result.Top(top) {
		fmt.Fprintf(w, "%s: %s\n", st.node.Render(rn.NodeID), st.score.Render(fmt.Sprintf("%.4f", rn.Score)))
	}
	fmt.Fprintln(w, rule)

	if weighted {
		fmt.Fprintln(w, st.note.Render("Score reflects reachability and average distance (using edge weights)."))
	} else {
		fmt.Fprintln(w, st.note.Render("Score reflects reachability and average distance."))
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
