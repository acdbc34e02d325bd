package planner

import (
	"fmt"
	"sort"

	"github.com/vk/plangridgo/internal/cycles"
	"github.com/vk/plangridgo/internal/graph"
	"github.com/vk/plangridgo/internal/levels"
	"github.com/vk/plangridgo/internal/model"
)

// Group is one parallel phase of the plan. Its features have no enforced
// ordering among themselves, so they finish together, bounded by the slowest.
type Group struct {
	Features      []string `json:"features"`
	EstimatedTime int      `json:"estimated_time"`
}

// Result is the immutable outcome of one planning call.
type Result struct {
	Strategy     model.Strategy `json:"strategy"`
	BuildOrder   []string       `json:"build_order"`
	Groups       []Group        `json:"parallel_groups"`
	CriticalPath []string       `json:"critical_path"`
	Notes        string         `json:"notes"`
}

// Optimize produces the build plan for the graph under the given strategy.
// An empty roadmap is a valid roadmap: the result is empty, never an error.
// Features caught in dependency cycles are still placed, but their order
// relative to their cycle partners is arbitrary.
func Optimize(g *graph.Graph, strategy model.Strategy) Result {
	if g.Len() == 0 {
		return Result{Strategy: strategy, Notes: "no features to plan"}
	}

	reports := cycles.Find(g)
	comp := cycles.Components(g, reports)
	leveled := levels.Compute(g, comp, strategy.MinStrength())

	var groups []Group
	if strategy == model.StrategySafest {
		groups = linearGroups(g, comp)
	} else {
		groups = levelGroups(g, leveled.Levels)
	}

	order := make([]string, 0, g.Len())
	total := 0
	for _, grp := range groups {
		order = append(order, grp.Features...)
		total += grp.EstimatedTime
	}

	notes := fmt.Sprintf("%d features in %d groups, estimated total time %d", g.Len(), len(groups), total)
	if len(reports) == 1 {
		notes += "; 1 dependency cycle detected"
	} else if len(reports) > 1 {
		notes += fmt.Sprintf("; %d dependency cycles detected", len(reports))
	}

	return Result{
		Strategy:     strategy,
		BuildOrder:   order,
		Groups:       groups,
		CriticalPath: leveled.CriticalPath,
		Notes:        notes,
	}
}

// levelGroups builds one group per level, levels ascending, features within
// a group ordered by priority (descending) then id.
func levelGroups(g *graph.Graph, levelByID map[string]int) []Group {
	byLevel := make(map[int][]int)
	for v := 0; v < g.Len(); v++ {
		lvl := levelByID[g.ID(v)]
		byLevel[lvl] = append(byLevel[lvl], v)
	}

	lvls := make([]int, 0, len(byLevel))
	for lvl := range byLevel {
		lvls = append(lvls, lvl)
	}
	sort.Ints(lvls)

	groups := make([]Group, 0, len(lvls))
	for _, lvl := range lvls {
		nodes := byLevel[lvl]
		sortNodes(g, nodes)

		grp := Group{Features: make([]string, len(nodes))}
		for i, v := range nodes {
			grp.Features[i] = g.ID(v)
			if w := g.Weight(v); w > grp.EstimatedTime {
				grp.EstimatedTime = w
			}
		}
		groups = append(groups, grp)
	}
	return groups
}

// linearGroups produces the fully serial plan: one feature per group, in a
// topological order that honors every edge. Ready candidates are consumed by
// priority (descending) then id; edges internal to one cycle are ignored so
// cyclic features become ready once their outside prerequisites are done.
func linearGroups(g *graph.Graph, comp map[int]int) []Group {
	n := g.Len()
	indegree := make([]int, n)
	for v := 0; v < n; v++ {
		for _, ei := range g.In(v) {
			if sameComponent(comp, g.Edge(ei).From, v) {
				continue
			}
			indegree[v]++
		}
	}

	var ready []int
	for v := 0; v < n; v++ {
		if indegree[v] == 0 {
			ready = append(ready, v)
		}
	}

	groups := make([]Group, 0, n)
	for len(ready) > 0 {
		best := 0
		for i := 1; i < len(ready); i++ {
			if nodeBefore(g, ready[i], ready[best]) {
				best = i
			}
		}
		v := ready[best]
		ready = append(ready[:best], ready[best+1:]...)

		groups = append(groups, Group{Features: []string{g.ID(v)}, EstimatedTime: g.Weight(v)})

		for _, ei := range g.Out(v) {
			w := g.Edge(ei).To
			if sameComponent(comp, v, w) {
				continue
			}
			indegree[w]--
			if indegree[w] == 0 {
				ready = append(ready, w)
			}
		}
	}
	return groups
}

func sameComponent(comp map[int]int, a, b int) bool {
	ca, okA := comp[a]
	cb, okB := comp[b]
	return okA && okB && ca == cb
}

// sortNodes orders node indices by priority (descending) then id.
func sortNodes(g *graph.Graph, nodes []int) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodeBefore(g, nodes[i], nodes[j])
	})
}

func nodeBefore(g *graph.Graph, a, b int) bool {
	fa, fb := g.Feature(a), g.Feature(b)
	if fa.Priority != fb.Priority {
		return fa.Priority > fb.Priority
	}
	return fa.ID < fb.ID
}
