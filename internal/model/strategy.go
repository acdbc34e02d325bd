// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Strategy enum selecting how aggressively the planner
// parallelizes the build order.
package model

import "fmt"

// Strategy selects which edge strengths constrain grouping and ordering.
type Strategy int

const (
	// StrategySafest honors every edge, including optional ones, and emits a
	// fully linear build order with one feature per group.
	StrategySafest Strategy = iota + 1
	// StrategyBalanced honors required and recommended edges and groups
	// independent features at the same level.
	StrategyBalanced
	// StrategyFastest honors only required edges, maximizing parallelism.
	StrategyFastest
)

// ParseStrategy converts a configuration word into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "safest":
		return StrategySafest, nil
	case "balanced":
		return StrategyBalanced, nil
	case "fastest":
		return StrategyFastest, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q: must be 'safest', 'balanced' or 'fastest'", s)
	}
}

// String returns the configuration word for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategySafest:
		return "safest"
	case StrategyBalanced:
		return "balanced"
	case StrategyFastest:
		return "fastest"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// MarshalText renders the strategy as its configuration word in JSON output.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MinStrength returns the weakest edge strength the strategy still enforces.
func (s Strategy) MinStrength() Strength {
	switch s {
	case StrategySafest:
		return StrengthOptional
	case StrategyFastest:
		return StrengthRequired
	default:
		return StrengthRecommended
	}
}
