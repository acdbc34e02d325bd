package planner

import (
	"sort"

	"github.com/vk/plangridgo/internal/graph"
	"github.com/vk/plangridgo/internal/model"
)

// QuickWins returns the features nothing blocks: those with no incoming
// required or recommended edge (optional-only or fully independent features
// both qualify). The list is ranked by complexity ascending, then priority
// descending, then id, and truncated to limit when limit is positive.
func QuickWins(g *graph.Graph, limit int) []string {
	var wins []int
	for v := 0; v < g.Len(); v++ {
		blocked := false
		for _, ei := range g.In(v) {
			if g.Edge(ei).Strength >= model.StrengthRecommended {
				blocked = true
				break
			}
		}
		if !blocked {
			wins = append(wins, v)
		}
	}

	sort.Slice(wins, func(i, j int) bool {
		fi, fj := g.Feature(wins[i]), g.Feature(wins[j])
		if fi.Complexity != fj.Complexity {
			return fi.Complexity < fj.Complexity
		}
		if fi.Priority != fj.Priority {
			return fi.Priority > fj.Priority
		}
		return fi.ID < fj.ID
	})

	if limit > 0 && len(wins) > limit {
		wins = wins[:limit]
	}

	ids := make([]string, len(wins))
	for i, v := range wins {
		ids[i] = g.ID(v)
	}
	return ids
}
