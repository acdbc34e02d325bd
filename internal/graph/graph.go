package graph

import "github.com/vk/plangridgo/internal/model"

// Edge is a validated dependency edge between two node indices. Seq records
// the input position of the edge's first occurrence so that later tie-breaks
// can fall back to input order deterministically.
type Edge struct {
	From int
	To   int

	Type         model.DependencyType
	Strength     model.Strength
	Confidence   float64
	Reason       string
	AutoDetected bool

	Seq int
}

// Graph is the immutable, validated representation of a roadmap. Nodes are
// addressed by dense integer index in feature input order; ids resolve
// through an index lookup. The graph never mutates the inputs it was built
// from and is safe for concurrent readers.
type Graph struct {
	features []model.Feature
	index    map[string]int
	edges    []Edge

	// out and in hold edge indices per node, in edge input order.
	out [][]int
	in  [][]int
}

// Len returns the number of features in the graph.
func (g *Graph) Len() int {
	return len(g.features)
}

// Feature returns the feature at the given node index.
func (g *Graph) Feature(i int) model.Feature {
	return g.features[i]
}

// ID returns the feature id at the given node index.
func (g *Graph) ID(i int) string {
	return g.features[i].ID
}

// Weight returns the scheduling weight of the node.
func (g *Graph) Weight(i int) int {
	return g.features[i].Weight()
}

// Index resolves a feature id to its node index.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Edge returns the edge at the given edge index.
func (g *Graph) Edge(ei int) Edge {
	return g.edges[ei]
}

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Out returns the indices of edges leaving the node (node is prerequisite).
// The returned slice is shared and must not be modified.
func (g *Graph) Out(i int) []int {
	return g.out[i]
}

// In returns the indices of edges entering the node (node is dependent).
// The returned slice is shared and must not be modified.
func (g *Graph) In(i int) []int {
	return g.in[i]
}
