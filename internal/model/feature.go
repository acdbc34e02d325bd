// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Feature structure, the atomic unit of a roadmap.
package model

// MinComplexity and MaxComplexity bound the accepted complexity score.
// The score doubles as the feature's scheduling weight.
const (
	MinComplexity = 1
	MaxComplexity = 10
)

// Feature is the format-agnostic representation of a `feature` block.
// Features are immutable for the duration of one planning call.
type Feature struct {
	// ID uniquely identifies the feature across the whole roadmap.
	ID string

	Name        string
	Description string
	Priority    Priority

	// Complexity is an integer score in [MinComplexity, MaxComplexity].
	Complexity int
}

// Weight returns the scheduling weight derived from the feature's complexity.
func (f Feature) Weight() int {
	return f.Complexity
}
