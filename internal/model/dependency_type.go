// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "fmt"

// DependencyType classifies why one feature depends on another. The engine
// treats all types identically; the classification exists for reporting and
// for keeping edges between the same pair distinct.
type DependencyType int

const (
	DependencyTechnical DependencyType = iota + 1
	DependencyLogical
	DependencyBusiness
)

// ParseDependencyType converts a configuration word into a DependencyType.
func ParseDependencyType(s string) (DependencyType, error) {
	switch s {
	case "technical":
		return DependencyTechnical, nil
	case "logical":
		return DependencyLogical, nil
	case "business":
		return DependencyBusiness, nil
	default:
		return 0, fmt.Errorf("unknown dependency type %q: must be 'technical', 'logical' or 'business'", s)
	}
}

// String returns the configuration word for the dependency type.
func (t DependencyType) String() string {
	switch t {
	case DependencyTechnical:
		return "technical"
	case DependencyLogical:
		return "logical"
	case DependencyBusiness:
		return "business"
	default:
		return fmt.Sprintf("dependency_type(%d)", int(t))
	}
}
