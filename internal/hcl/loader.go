package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/plangridgo/internal/ctxlog"
	"github.com/vk/plangridgo/internal/fsutil"
	"github.com/vk/plangridgo/internal/model"
	"github.com/vk/plangridgo/internal/schema"
)

// Settings carries the resolved `settings` block. Nil fields mean the block
// did not set them.
type Settings struct {
	DefaultStrategy *model.Strategy
	MinConfidence   *float64
}

// Roadmap is the loaded, validated, format-agnostic content of a roadmap
// file set.
type Roadmap struct {
	Features     []model.Feature
	Dependencies []model.Dependency
	Settings     Settings
}

// Loader reads roadmap definitions from .hcl files.
type Loader struct{}

// NewLoader creates a new HCL roadmap loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges them into a
// single roadmap. Validation failures are returned as hcl.Diagnostics wrapped
// into the error, with source positions.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Roadmap, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findRoadmapFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no roadmap files found under %s", strings.Join(paths, ", "))
	}
	logger.Debug("Discovered roadmap files.", "count", len(files))

	parser := hclparse.NewParser()
	roadmap := &Roadmap{}
	var diags hcl.Diagnostics
	var settingsSeen *hcl.Range

	for _, file := range files {
		hclFile, parseDiags := parser.ParseHCLFile(file)
		if parseDiags.HasErrors() {
			return nil, fmt.Errorf("failed to parse roadmap file %s: %w", file, parseDiags)
		}

		var root schema.RoadmapFile
		decodeDiags := gohcl.DecodeBody(hclFile.Body, nil, &root)
		if decodeDiags.HasErrors() {
			return nil, fmt.Errorf("failed to decode roadmap file %s: %w", file, decodeDiags)
		}

		for _, f := range root.Features {
			feature, fDiags := translateFeature(f)
			diags = append(diags, fDiags...)
			roadmap.Features = append(roadmap.Features, feature)
		}
		for _, d := range root.Dependencies {
			dependency, dDiags := translateDependency(d)
			diags = append(diags, dDiags...)
			roadmap.Dependencies = append(roadmap.Dependencies, dependency)
		}
		for _, s := range root.Settings {
			rng := blockRange(s.Remain)
			if settingsSeen != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate settings block",
					Detail:   fmt.Sprintf("A settings block was already declared at %s.", settingsSeen),
					Subject:  rng,
				})
				continue
			}
			settingsSeen = rng
			settings, sDiags := translateSettings(s)
			diags = append(diags, sDiags...)
			roadmap.Settings = settings
		}
	}

	diags = append(diags, checkDuplicateFeatures(roadmap.Features)...)

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid roadmap: %w", diags)
	}

	logger.Debug("HCL loading complete.",
		"features", len(roadmap.Features),
		"dependencies", len(roadmap.Dependencies),
	)
	return roadmap, nil
}

// ApplyConfidenceThreshold drops auto-detected dependencies whose confidence
// is below threshold. Manually declared dependencies always survive.
func (r *Roadmap) ApplyConfidenceThreshold(ctx context.Context, threshold float64) {
	if threshold <= 0 {
		return
	}
	logger := ctxlog.FromContext(ctx)
	kept := r.Dependencies[:0]
	for _, d := range r.Dependencies {
		if d.AutoDetected && d.Confidence < threshold {
			logger.Debug("Dropping low-confidence dependency.",
				"from", d.From, "to", d.To, "confidence", d.Confidence, "threshold", threshold)
			continue
		}
		kept = append(kept, d)
	}
	r.Dependencies = kept
}

// findRoadmapFiles flattens the given paths into a deduplicated list of
// .hcl files. A path that cannot be read fails the load so a typo'd path
// never turns into an empty roadmap.
func findRoadmapFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, f := range files {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			all = append(all, f)
		}
	}
	return all, nil
}

func checkDuplicateFeatures(features []model.Feature) hcl.Diagnostics {
	var diags hcl.Diagnostics
	seen := make(map[string]bool)
	for _, f := range features {
		if seen[f.ID] {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate feature",
				Detail:   fmt.Sprintf("Feature %q is declared more than once across the roadmap files.", f.ID),
			})
		}
		seen[f.ID] = true
	}
	return diags
}

// blockRange recovers a source position from a block's leftover body for use
// as a diagnostic subject.
func blockRange(body hcl.Body) *hcl.Range {
	if body == nil {
		return nil
	}
	rng := body.MissingItemRange()
	return &rng
}
