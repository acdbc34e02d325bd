// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Dependency structure, the directed edge type of the
// roadmap graph.
//
// Why does the edge point prerequisite -> dependent?
//
// A `dependency "a" "b"` block reads as "a must exist before b", so the edge
// runs From=a To=b and a topological walk of the graph yields a valid build
// order directly, with no reversal step.
package model

// Dependency is the format-agnostic representation of a `dependency` block.
// The From feature is the prerequisite; the To feature depends on it.
type Dependency struct {
	From string
	To   string

	Type     DependencyType
	Strength Strength

	// Reason optionally records why the edge exists.
	Reason string

	// Confidence is a score in [0, 1]. Hand-written edges default to 1.
	Confidence float64

	// AutoDetected marks edges proposed by an external suggestion service.
	// Such edges are subject to the caller's confidence threshold before
	// they ever reach the engine.
	AutoDetected bool
}
