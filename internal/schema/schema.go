package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Feature represents a `feature` block from a user's roadmap file. The label
// is the feature id referenced by dependency blocks.
type Feature struct {
	ID          string   `hcl:"id,label"`
	Name        string   `hcl:"name"`
	Description string   `hcl:"description,optional"`
	Priority    string   `hcl:"priority,optional"`
	Complexity  int      `hcl:"complexity"`
	Remain      hcl.Body `hcl:",remain"`
}

// Dependency represents a `dependency` block. The first label names the
// prerequisite feature, the second the feature that depends on it.
type Dependency struct {
	From     string `hcl:"from,label"`
	To       string `hcl:"to,label"`
	Type     string `hcl:"type,optional"`
	Strength string `hcl:"strength,optional"`
	Reason   string `hcl:"reason,optional"`
	// Kept as an expression so validation errors can point at the exact
	// source range.
	Confidence   hcl.Expression `hcl:"confidence,optional"`
	AutoDetected bool           `hcl:"auto_detected,optional"`
	Remain       hcl.Body       `hcl:",remain"`
}

// Settings represents the optional `settings` block. At most one is allowed
// across the whole roadmap file set.
type Settings struct {
	DefaultStrategy string   `hcl:"default_strategy,optional"`
	MinConfidence   *float64 `hcl:"min_confidence,optional"`
	Remain          hcl.Body `hcl:",remain"`
}

// RoadmapFile represents the top-level structure of a single roadmap file.
type RoadmapFile struct {
	Features     []*Feature    `hcl:"feature,block"`
	Dependencies []*Dependency `hcl:"dependency,block"`
	Settings     []*Settings   `hcl:"settings,block"`
	Remain       hcl.Body      `hcl:",remain"`
}
