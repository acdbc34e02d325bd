// Package levels assigns every feature a topological level (its longest
// weighted distance from a root) and finds the single longest weighted chain
// in the roadmap, the critical path. Both are computed over the acyclic part
// of the graph, considering only edges at or above a caller-chosen strength,
// with features caught in cycles placed just after their last non-cyclic
// prerequisite.
package levels
