// Package cycles finds circular dependencies in a roadmap graph. Every
// strongly-connected component with more than one feature is reported as a
// cycle, classified by the strength of the edges inside it, together with a
// suggested edge whose removal shrinks the component.
//
// Cycles are first-class output, not errors: the caller can warn the user
// and still obtain a best-effort build order, with cyclic features treated
// as an unordered bucket by the later planning stages.
package cycles
