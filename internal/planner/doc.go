// Package planner turns a validated roadmap graph into a concrete build
// plan: parallel groups of independent features, a flattened build order,
// the critical path, and estimated durations, all under one of three
// scheduling strategies that differ only in which edge strengths they
// enforce. It also ranks "quick wins", the features nothing blocks.
//
// Planning is a pure derivation. Each call recomputes cycles and levels from
// scratch for its strategy, allocates its own working state, and never
// mutates the graph, so concurrent calls against the same graph are safe.
package planner
