package levels

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/plangridgo/internal/cycles"
	"github.com/vk/plangridgo/internal/graph"
	"github.com/vk/plangridgo/internal/model"
)

func feat(id string, complexity int) model.Feature {
	return model.Feature{ID: id, Name: id, Priority: model.PriorityMedium, Complexity: complexity}
}

func dep(from, to string, strength model.Strength) model.Dependency {
	return model.Dependency{From: from, To: to, Type: model.DependencyTechnical, Strength: strength, Confidence: 1}
}

func build(t *testing.T, features []model.Feature, deps []model.Dependency) *graph.Graph {
	t.Helper()
	g, err := graph.Build(features, deps)
	require.NoError(t, err)
	return g
}

func TestComputeLevels(t *testing.T) {
	t.Parallel()

	g := build(t,
		[]model.Feature{feat("a", 2), feat("b", 5), feat("c", 3)},
		[]model.Dependency{
			dep("a", "b", model.StrengthRequired),
			dep("a", "c", model.StrengthOptional),
		},
	)

	t.Run("optional edges excluded by default", func(t *testing.T) {
		t.Parallel()
		res := Compute(g, nil, model.StrengthRecommended)
		assert.Equal(t, map[string]int{"a": 0, "b": 2, "c": 0}, res.Levels)
		assert.Equal(t, []string{"a", "b"}, res.CriticalPath)
	})

	t.Run("optional edges enforced on demand", func(t *testing.T) {
		t.Parallel()
		res := Compute(g, nil, model.StrengthOptional)
		assert.Equal(t, map[string]int{"a": 0, "b": 2, "c": 2}, res.Levels)
		// Path a->b weighs 7, a->c weighs 5.
		assert.Equal(t, []string{"a", "b"}, res.CriticalPath)
	})

	t.Run("required only", func(t *testing.T) {
		t.Parallel()
		res := Compute(g, nil, model.StrengthRequired)
		assert.Equal(t, map[string]int{"a": 0, "b": 2, "c": 0}, res.Levels)
		assert.Equal(t, []string{"a", "b"}, res.CriticalPath)
	})
}

func TestComputeChain(t *testing.T) {
	t.Parallel()

	g := build(t,
		[]model.Feature{feat("a", 1), feat("b", 2), feat("c", 4), feat("d", 1)},
		[]model.Dependency{
			dep("a", "b", model.StrengthRequired),
			dep("b", "c", model.StrengthRecommended),
			dep("a", "d", model.StrengthRequired),
		},
	)

	res := Compute(g, nil, model.StrengthRecommended)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 3, "d": 1}, res.Levels)
	assert.Equal(t, []string{"a", "b", "c"}, res.CriticalPath)
}

func TestComputeCriticalPathEndpointTieBreak(t *testing.T) {
	t.Parallel()

	// Two equally heavy chains; the one ending at the lexically smaller id wins.
	g := build(t,
		[]model.Feature{feat("root", 1), feat("m", 2), feat("k", 2)},
		[]model.Dependency{
			dep("root", "m", model.StrengthRequired),
			dep("root", "k", model.StrengthRequired),
		},
	)

	res := Compute(g, nil, model.StrengthRecommended)
	assert.Equal(t, []string{"root", "k"}, res.CriticalPath)
}

func TestComputeEmptyGraph(t *testing.T) {
	t.Parallel()

	g := build(t, nil, nil)
	res := Compute(g, nil, model.StrengthRecommended)
	assert.Empty(t, res.Levels)
	assert.Empty(t, res.CriticalPath)
}

func TestComputeSingleFeature(t *testing.T) {
	t.Parallel()

	g := build(t, []model.Feature{feat("solo", 4)}, nil)
	res := Compute(g, nil, model.StrengthRecommended)
	assert.Equal(t, map[string]int{"solo": 0}, res.Levels)
	assert.Equal(t, []string{"solo"}, res.CriticalPath)
}

func TestComputeCyclicPlacement(t *testing.T) {
	t.Parallel()

	// base -> x, and x <-> y form a cycle; z hangs off base as well.
	g := build(t,
		[]model.Feature{feat("base", 2), feat("x", 3), feat("y", 3), feat("z", 1)},
		[]model.Dependency{
			dep("base", "x", model.StrengthRequired),
			dep("x", "y", model.StrengthRequired),
			dep("y", "x", model.StrengthRequired),
			dep("base", "z", model.StrengthRequired),
		},
	)

	reports := cycles.Find(g)
	require.Len(t, reports, 1)

	res := Compute(g, cycles.Components(g, reports), model.StrengthRecommended)

	// x slots in right after its non-cyclic prerequisite; y has none and
	// sits at level 0. Neither appears on the critical path.
	assert.Equal(t, 0, res.Levels["base"])
	assert.Equal(t, 1, res.Levels["x"])
	assert.Equal(t, 0, res.Levels["y"])
	assert.Equal(t, 2, res.Levels["z"])
	assert.Equal(t, []string{"base", "z"}, res.CriticalPath)
}

func TestComputeCyclicPrerequisiteLevelsDependent(t *testing.T) {
	t.Parallel()

	// base -> x, x <-> y form a cycle, and z requires the cyclic x. z must
	// level strictly after x even though x itself carries no weighted level.
	g := build(t,
		[]model.Feature{feat("base", 2), feat("x", 3), feat("y", 3), feat("z", 1)},
		[]model.Dependency{
			dep("base", "x", model.StrengthRequired),
			dep("x", "y", model.StrengthRequired),
			dep("y", "x", model.StrengthRequired),
			dep("x", "z", model.StrengthRequired),
		},
	)

	reports := cycles.Find(g)
	require.Len(t, reports, 1)

	res := Compute(g, cycles.Components(g, reports), model.StrengthRecommended)

	assert.Equal(t, 0, res.Levels["base"])
	assert.Equal(t, 1, res.Levels["x"])
	assert.Equal(t, 0, res.Levels["y"])
	assert.Equal(t, 2, res.Levels["z"], "a dependent of a cyclic feature lands after it")
	assert.Greater(t, res.Levels["z"], res.Levels["x"])
	assert.NotContains(t, res.CriticalPath, "x")
	assert.NotContains(t, res.CriticalPath, "z", "a path through a cycle never reaches the critical path")
}

// TestComputeCriticalPathBruteForce cross-checks the DP against exhaustive
// path enumeration on small random DAGs.
func TestComputeCriticalPathBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(5) // up to 6 nodes
		features := make([]model.Feature, n)
		for i := range features {
			features[i] = feat(fmt.Sprintf("f%02d", i), 1+rng.Intn(10))
		}

		// Only forward edges by index, so the graph is acyclic by construction.
		var deps []model.Dependency
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Intn(100) < 40 {
					deps = append(deps, dep(features[i].ID, features[j].ID, model.StrengthRequired))
				}
			}
		}

		g := build(t, features, deps)
		res := Compute(g, nil, model.StrengthRecommended)

		// The returned path must be a real path of the enforced subgraph.
		for i := 0; i+1 < len(res.CriticalPath); i++ {
			assert.True(t, hasEdge(g, res.CriticalPath[i], res.CriticalPath[i+1]),
				"trial %d: %v is not connected at position %d", trial, res.CriticalPath, i)
		}

		want := bruteForceLongest(g)
		assert.Equal(t, want, pathWeight(g, res.CriticalPath),
			"trial %d: critical path %v is not maximal", trial, res.CriticalPath)
	}
}

func hasEdge(g *graph.Graph, fromID, toID string) bool {
	from, ok := g.Index(fromID)
	if !ok {
		return false
	}
	for _, ei := range g.Out(from) {
		if g.ID(g.Edge(ei).To) == toID {
			return true
		}
	}
	return false
}

func pathWeight(g *graph.Graph, path []string) int {
	total := 0
	for _, id := range path {
		i, _ := g.Index(id)
		total += g.Weight(i)
	}
	return total
}

// bruteForceLongest enumerates every path in the graph and returns the
// maximum total node weight.
func bruteForceLongest(g *graph.Graph) int {
	best := 0
	var walk func(v, weight int)
	walk = func(v, weight int) {
		weight += g.Weight(v)
		if weight > best {
			best = weight
		}
		for _, ei := range g.Out(v) {
			walk(g.Edge(ei).To, weight)
		}
	}
	for v := 0; v < g.Len(); v++ {
		walk(v, 0)
	}
	return best
}
