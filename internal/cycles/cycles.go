package cycles

import (
	"sort"

	"github.com/vk/plangridgo/internal/graph"
	"github.com/vk/plangridgo/internal/model"
)

// Report describes one detected cycle.
type Report struct {
	// Cycle lists the feature ids forming the loop, in depth-first discovery
	// order starting from the cycle's lowest-index member. The order is
	// reproducible across runs for the same input.
	Cycle []string `json:"cycle"`

	Severity Severity `json:"severity"`

	// BreakFrom and BreakTo name the suggested break edge: the weakest edge
	// inside the cycle. Removing it shrinks the component on the next pass.
	BreakFrom string `json:"suggested_break_from"`
	BreakTo   string `json:"suggested_break_to"`
}

// tarjan holds the traversal state for Tarjan's strongly-connected-components
// algorithm: one depth-first pass assigning each node an index and a lowlink,
// popping a component off the stack whenever a root is found.
type tarjan struct {
	g        *graph.Graph
	index    int
	indices  []int
	lowlinks []int
	onStack  []bool
	stack    []int

	components [][]int
}

// Find returns one Report per strongly-connected component of size > 1,
// ordered by each component's lowest node index. A valid graph cannot fail
// cycle detection; an acyclic roadmap simply yields no reports.
func Find(g *graph.Graph) []Report {
	n := g.Len()
	t := &tarjan{
		g:        g,
		indices:  make([]int, n),
		lowlinks: make([]int, n),
		onStack:  make([]bool, n),
	}
	for i := range t.indices {
		t.indices[i] = -1
	}

	for v := 0; v < n; v++ {
		if t.indices[v] < 0 {
			t.strongConnect(v)
		}
	}

	var reports []Report
	for _, comp := range t.components {
		if len(comp) < 2 {
			continue
		}
		reports = append(reports, buildReport(g, comp))
	}

	// Tarjan emits components in reverse-topological completion order;
	// normalize to ascending lowest-member index for stable output.
	sort.Slice(reports, func(i, j int) bool {
		li, _ := g.Index(reports[i].Cycle[0])
		lj, _ := g.Index(reports[j].Cycle[0])
		return li < lj
	})
	return reports
}

func (t *tarjan) strongConnect(v int) {
	t.indices[v] = t.index
	t.lowlinks[v] = t.index
	t.index++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, ei := range t.g.Out(v) {
		w := t.g.Edge(ei).To
		if t.indices[w] < 0 {
			t.strongConnect(w)
			t.lowlinks[v] = min(t.lowlinks[v], t.lowlinks[w])
		} else if t.onStack[w] {
			t.lowlinks[v] = min(t.lowlinks[v], t.indices[w])
		}
	}

	if t.lowlinks[v] == t.indices[v] {
		var comp []int
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.components = append(t.components, comp)
	}
}

// buildReport derives the ordered member list, severity and break edge for
// one component.
func buildReport(g *graph.Graph, comp []int) Report {
	members := make(map[int]bool, len(comp))
	lowest := comp[0]
	for _, v := range comp {
		members[v] = true
		if v < lowest {
			lowest = v
		}
	}

	// Collect the edges that live entirely inside the component.
	var intra []int
	for _, v := range comp {
		for _, ei := range g.Out(v) {
			if members[g.Edge(ei).To] {
				intra = append(intra, ei)
			}
		}
	}

	severity := SeverityLow
	breakEdge := intra[0]
	for _, ei := range intra {
		e := g.Edge(ei)
		switch {
		case e.Strength == model.StrengthRequired:
			severity = SeverityHigh
		case e.Strength == model.StrengthRecommended && severity < SeverityMedium:
			severity = SeverityMedium
		}
		if weakerEdge(g.Edge(ei), g.Edge(breakEdge)) {
			breakEdge = ei
		}
	}

	return Report{
		Cycle:     discoveryOrder(g, lowest, members),
		Severity:  severity,
		BreakFrom: g.ID(g.Edge(breakEdge).From),
		BreakTo:   g.ID(g.Edge(breakEdge).To),
	}
}

// weakerEdge reports whether a should be preferred over b as the break edge:
// lower strength first, then lower confidence, then earlier input position.
func weakerEdge(a, b graph.Edge) bool {
	if a.Strength != b.Strength {
		return a.Strength < b.Strength
	}
	if a.Confidence != b.Confidence {
		return a.Confidence < b.Confidence
	}
	return a.Seq < b.Seq
}

// discoveryOrder walks the component depth-first from its lowest-index node,
// following only intra-component edges with neighbors in ascending index
// order, and returns the feature ids in the order first seen.
func discoveryOrder(g *graph.Graph, start int, members map[int]bool) []string {
	seen := make(map[int]bool, len(members))
	var order []string

	var visit func(v int)
	visit = func(v int) {
		seen[v] = true
		order = append(order, g.ID(v))

		var next []int
		for _, ei := range g.Out(v) {
			w := g.Edge(ei).To
			if members[w] && !seen[w] {
				next = append(next, w)
			}
		}
		sort.Ints(next)
		for _, w := range next {
			if !seen[w] {
				visit(w)
			}
		}
	}
	visit(start)
	return order
}

// Components resolves the reported cycles back to node indices, mapping each
// cyclic node to the position of its report. Later stages use the mapping to
// tell cycle partners apart from members of other cycles.
func Components(g *graph.Graph, reports []Report) map[int]int {
	comp := make(map[int]int)
	for ci, r := range reports {
		for _, id := range r.Cycle {
			if i, ok := g.Index(id); ok {
				comp[i] = ci
			}
		}
	}
	return comp
}
