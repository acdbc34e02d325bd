package graph

import "fmt"

// ErrorKind identifies which structural invariant a roadmap violated.
type ErrorKind int

const (
	// KindDuplicateFeature means two features share the same id.
	KindDuplicateFeature ErrorKind = iota + 1
	// KindUnknownFeature means an edge references a feature id that does not exist.
	KindUnknownFeature
	// KindSelfDependency means an edge points from a feature to itself.
	KindSelfDependency
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateFeature:
		return "duplicate_feature"
	case KindUnknownFeature:
		return "unknown_feature"
	case KindSelfDependency:
		return "self_dependency"
	default:
		return fmt.Sprintf("error_kind(%d)", int(k))
	}
}

// BuildError reports the first invariant violation found while building a
// graph. Construction errors are fatal to the call: they indicate bad caller
// data, never a transient condition, so there is no partial result to return.
type BuildError struct {
	Kind ErrorKind

	// FeatureID is the offending feature id: the duplicated id, or the id an
	// edge referenced without it existing.
	FeatureID string

	// From and To identify the offending edge for edge-level violations.
	From string
	To   string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	switch e.Kind {
	case KindDuplicateFeature:
		return fmt.Sprintf("duplicate feature id %q", e.FeatureID)
	case KindUnknownFeature:
		return fmt.Sprintf("dependency %s -> %s references unknown feature %q", e.From, e.To, e.FeatureID)
	case KindSelfDependency:
		return fmt.Sprintf("feature %q cannot depend on itself", e.FeatureID)
	default:
		return fmt.Sprintf("invalid roadmap (%s)", e.Kind)
	}
}
