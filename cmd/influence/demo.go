package main

import "github.com/dd0wney/cluso-influence/pkg/graph"

// demoUnweighted is an eight-person follower network
func demoUnweighted() graph.Unweighted {
	return graph.NewUnweighted(map[string][]string{
		"Alicia":  {"Britney"},
		"Britney": {"Claire"},
		"Claire":  {"Diana"},
		"Diana":   {"Edward", "Harry"},
		"Edward":  {"Harry", "Gloria", "Fred"},
		"Harry":   {"Gloria"},
		"Gloria":  {"Fred"},
		"Fred":    {},
	})
}

// demoWeighted is a ten-person network where weights are interaction costs
func demoWeighted() graph.Weighted {
	return graph.NewWeighted(map[string][]graph.Edge{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 1}, {To: "E", Weight: 5}},
		"B": {{To: "C", Weight: 4}, {To: "E", Weight: 1}, {To: "G", Weight: 1}, {To: "H", Weight: 1}},
		"C": {{To: "D", Weight: 3}, {To: "E", Weight: 1}},
		"D": {{To: "E", Weight: 2}, {To: "F", Weight: 1}, {To: "G", Weight: 5}},
		"E": {{To: "G", Weight: 2}},
		"F": {{To: "G", Weight: 1}},
		"G": {{To: "H", Weight: 2}},
		"H": {{To: "I", Weight: 3}},
		"I": {{To: "J", Weight: 3}},
		"J": {},
	})
}
