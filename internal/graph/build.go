package graph

import "github.com/vk/plangridgo/internal/model"

// edgeKey identifies an edge for duplicate merging. Two edges between the
// same ordered pair are distinct as long as their type or strength differ;
// exact duplicates collapse into one.
type edgeKey struct {
	from, to int
	typ      model.DependencyType
	strength model.Strength
}

// Build constructs a validated Graph from a roadmap's features and
// dependencies. Validation is a single pass: features are checked before
// edges, edges in input order, and the first violation aborts the build.
// The input slices are copied, never retained or mutated.
func Build(features []model.Feature, deps []model.Dependency) (*Graph, error) {
	g := &Graph{
		features: make([]model.Feature, len(features)),
		index:    make(map[string]int, len(features)),
		out:      make([][]int, len(features)),
		in:       make([][]int, len(features)),
	}

	for i, f := range features {
		if _, exists := g.index[f.ID]; exists {
			return nil, &BuildError{Kind: KindDuplicateFeature, FeatureID: f.ID}
		}
		g.features[i] = f
		g.index[f.ID] = i
	}

	seen := make(map[edgeKey]int, len(deps))
	for seq, d := range deps {
		if d.From == d.To {
			return nil, &BuildError{Kind: KindSelfDependency, FeatureID: d.From, From: d.From, To: d.To}
		}
		from, ok := g.index[d.From]
		if !ok {
			return nil, &BuildError{Kind: KindUnknownFeature, FeatureID: d.From, From: d.From, To: d.To}
		}
		to, ok := g.index[d.To]
		if !ok {
			return nil, &BuildError{Kind: KindUnknownFeature, FeatureID: d.To, From: d.From, To: d.To}
		}

		key := edgeKey{from: from, to: to, typ: d.Type, strength: d.Strength}
		if ei, dup := seen[key]; dup {
			// Exact duplicate: keep the first occurrence, promote the
			// confidence if the repeat is more certain.
			if d.Confidence > g.edges[ei].Confidence {
				g.edges[ei].Confidence = d.Confidence
			}
			continue
		}

		ei := len(g.edges)
		g.edges = append(g.edges, Edge{
			From:         from,
			To:           to,
			Type:         d.Type,
			Strength:     d.Strength,
			Confidence:   d.Confidence,
			Reason:       d.Reason,
			AutoDetected: d.AutoDetected,
			Seq:          seq,
		})
		seen[key] = ei
		g.out[from] = append(g.out[from], ei)
		g.in[to] = append(g.in[to], ei)
	}

	return g, nil
}
