package levels

import (
	"github.com/vk/plangridgo/internal/graph"
	"github.com/vk/plangridgo/internal/model"
)

// Result holds the per-feature levels and the critical path computed under
// one edge-strength filter.
type Result struct {
	// Levels maps every feature id to its level: the longest weighted
	// distance from any root, where an edge u->v contributes u's weight.
	// Roots sit at level 0. Features inside a cycle slot in right after
	// their prerequisites outside the cycle, and anything depending on a
	// cyclic feature lands at least one level later still.
	Levels map[string]int

	// CriticalPath is the longest weighted chain in the acyclic subgraph,
	// listed prerequisite-first. Its weight includes both endpoints.
	// Features inside cycles never appear on it.
	CriticalPath []string
}

// Compute derives levels and the critical path for the graph, enforcing only
// edges whose strength is at least minStrength. comp maps each cyclic node
// to its cycle; edges between two partners of one cycle carry no ordering,
// but every other enforced edge does, cyclic endpoints included. It never
// fails: a valid graph always levels.
func Compute(g *graph.Graph, comp map[int]int, minStrength model.Strength) Result {
	n := g.Len()
	level := make([]int, n)
	dist := make([]int, n) // weight of the heaviest path ending at the node
	pred := make([]int, n) // predecessor on that path, -1 at a path start
	order := topoOrder(g, comp, minStrength)

	for i := range pred {
		pred[i] = -1
	}

	// Dynamic programming over the topological order. Processing a node after
	// all of its enforced predecessors makes both recurrences single-pass.
	for _, v := range order {
		_, vCyclic := comp[v]
		if !vCyclic {
			dist[v] = g.Weight(v)
		}
		for _, ei := range g.In(v) {
			e := g.Edge(ei)
			u := e.From
			if e.Strength < minStrength || sameComponent(comp, u, v) {
				continue
			}
			_, uCyclic := comp[u]

			// Cyclic endpoints stay out of the weighted recurrence; the
			// edge still forces the dependent at least one level later.
			step := g.Weight(u)
			if uCyclic || vCyclic {
				step = 1
			}
			if lvl := level[u] + step; lvl > level[v] {
				level[v] = lvl
			}

			if uCyclic || vCyclic {
				continue
			}
			d := dist[u] + g.Weight(v)
			if d > dist[v] || (d == dist[v] && pred[v] >= 0 && g.ID(u) < g.ID(pred[v])) {
				dist[v] = d
				pred[v] = u
			}
		}
	}

	levelsByID := make(map[string]int, n)
	for v := 0; v < n; v++ {
		levelsByID[g.ID(v)] = level[v]
	}

	return Result{
		Levels:       levelsByID,
		CriticalPath: criticalPath(g, order, dist, pred, comp),
	}
}

// topoOrder runs Kahn's algorithm over every node, enforcing edges at or
// above minStrength except those internal to one cycle. Collapsing each
// cycle leaves an acyclic graph, so the walk always completes. Ready nodes
// are consumed in ascending lexical id order so the result is reproducible.
func topoOrder(g *graph.Graph, comp map[int]int, minStrength model.Strength) []int {
	n := g.Len()
	indegree := make([]int, n)
	for v := 0; v < n; v++ {
		for _, ei := range g.In(v) {
			e := g.Edge(ei)
			if e.Strength >= minStrength && !sameComponent(comp, e.From, v) {
				indegree[v]++
			}
		}
	}

	var ready []int
	for v := 0; v < n; v++ {
		if indegree[v] == 0 {
			ready = append(ready, v)
		}
	}

	order := make([]int, 0, n)
	for len(ready) > 0 {
		// Pop the lexically smallest ready id.
		best := 0
		for i := 1; i < len(ready); i++ {
			if g.ID(ready[i]) < g.ID(ready[best]) {
				best = i
			}
		}
		v := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		order = append(order, v)

		for _, ei := range g.Out(v) {
			e := g.Edge(ei)
			w := e.To
			if e.Strength < minStrength || sameComponent(comp, v, w) {
				continue
			}
			indegree[w]--
			if indegree[w] == 0 {
				ready = append(ready, w)
			}
		}
	}
	return order
}

// criticalPath picks the non-cyclic endpoint with the greatest path weight
// (ties broken by the lexically smallest id) and walks the predecessor chain
// back to a root.
func criticalPath(g *graph.Graph, order []int, dist []int, pred []int, comp map[int]int) []string {
	end := -1
	for _, v := range order {
		if _, cyclic := comp[v]; cyclic {
			continue
		}
		if end < 0 || dist[v] > dist[end] || (dist[v] == dist[end] && g.ID(v) < g.ID(end)) {
			end = v
		}
	}
	if end < 0 {
		return nil
	}

	var reversed []int
	for v := end; v >= 0; v = pred[v] {
		reversed = append(reversed, v)
	}

	path := make([]string, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = g.ID(v)
	}
	return path
}

func sameComponent(comp map[int]int, a, b int) bool {
	ca, okA := comp[a]
	cb, okB := comp[b]
	return okA && okB && ca == cb
}
