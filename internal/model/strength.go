// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Strength enum for dependency edges.
//
// Why a numeric ordering?
//
// Several stages compare edge strengths: cycle severity takes the strongest
// edge in a loop, the suggested break edge is the weakest, and each planning
// strategy enforces edges at or above a minimum strength. Encoding the enum
// as ordered integers makes all of those plain `>` / `>=` comparisons.
package model

import "fmt"

// Strength expresses how strictly a dependency edge must be honored.
type Strength int

const (
	StrengthOptional Strength = iota + 1
	StrengthRecommended
	StrengthRequired
)

// ParseStrength converts a configuration word into a Strength.
func ParseStrength(s string) (Strength, error) {
	switch s {
	case "required":
		return StrengthRequired, nil
	case "recommended":
		return StrengthRecommended, nil
	case "optional":
		return StrengthOptional, nil
	default:
		return 0, fmt.Errorf("unknown strength %q: must be 'required', 'recommended' or 'optional'", s)
	}
}

// String returns the configuration word for the strength.
func (s Strength) String() string {
	switch s {
	case StrengthRequired:
		return "required"
	case StrengthRecommended:
		return "recommended"
	case StrengthOptional:
		return "optional"
	default:
		return fmt.Sprintf("strength(%d)", int(s))
	}
}
