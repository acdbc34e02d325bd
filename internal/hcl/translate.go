package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/plangridgo/internal/model"
	"github.com/vk/plangridgo/internal/schema"
)

// translateFeature converts the HCL-specific feature schema into the agnostic
// model, validating enum words and ranges as it goes.
func translateFeature(s *schema.Feature) (model.Feature, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	rng := blockRange(s.Remain)

	feature := model.Feature{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Priority:    model.PriorityMedium,
		Complexity:  s.Complexity,
	}

	if s.Priority != "" {
		p, err := model.ParsePriority(s.Priority)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid priority",
				Detail:   fmt.Sprintf("Feature %q: %s.", s.ID, err),
				Subject:  rng,
			})
		} else {
			feature.Priority = p
		}
	}

	if s.Complexity < model.MinComplexity || s.Complexity > model.MaxComplexity {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid complexity",
			Detail: fmt.Sprintf("Feature %q: complexity %d is outside %d..%d.",
				s.ID, s.Complexity, model.MinComplexity, model.MaxComplexity),
			Subject: rng,
		})
	}

	return feature, diags
}

// translateDependency converts the HCL-specific dependency schema into the
// agnostic model. Omitted attributes take the conservative defaults:
// technical, required, confidence 1.0.
func translateDependency(s *schema.Dependency) (model.Dependency, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	rng := blockRange(s.Remain)

	dependency := model.Dependency{
		From:         s.From,
		To:           s.To,
		Type:         model.DependencyTechnical,
		Strength:     model.StrengthRequired,
		Reason:       s.Reason,
		Confidence:   1.0,
		AutoDetected: s.AutoDetected,
	}

	if s.Type != "" {
		t, err := model.ParseDependencyType(s.Type)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid dependency type",
				Detail:   fmt.Sprintf("Dependency %q -> %q: %s.", s.From, s.To, err),
				Subject:  rng,
			})
		} else {
			dependency.Type = t
		}
	}

	if s.Strength != "" {
		st, err := model.ParseStrength(s.Strength)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid dependency strength",
				Detail:   fmt.Sprintf("Dependency %q -> %q: %s.", s.From, s.To, err),
				Subject:  rng,
			})
		} else {
			dependency.Strength = st
		}
	}

	if confidence, cDiags := evalConfidence(s.Confidence, s.From, s.To); cDiags.HasErrors() {
		diags = append(diags, cDiags...)
	} else if confidence != nil {
		dependency.Confidence = *confidence
	}

	return dependency, diags
}

// evalConfidence evaluates the confidence expression, if present, into a
// float in 0..1. Returning nil means the attribute was omitted.
func evalConfidence(expr hcl.Expression, from, to string) (*float64, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	subject := expr.Range()

	num, err := convert.Convert(val, cty.Number)
	if err != nil || num.IsNull() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid confidence",
			Detail:   fmt.Sprintf("Dependency %q -> %q: confidence must be a number.", from, to),
			Subject:  &subject,
		}}
	}
	f, _ := num.AsBigFloat().Float64()
	if f < 0 || f > 1 {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid confidence",
			Detail:   fmt.Sprintf("Dependency %q -> %q: confidence %v is outside 0..1.", from, to, f),
			Subject:  &subject,
		}}
	}
	return &f, nil
}

// translateSettings converts the HCL-specific settings schema into resolved
// settings.
func translateSettings(s *schema.Settings) (Settings, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var settings Settings
	rng := blockRange(s.Remain)

	if s.DefaultStrategy != "" {
		strategy, err := model.ParseStrategy(s.DefaultStrategy)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid default strategy",
				Detail:   fmt.Sprintf("Settings: %s.", err),
				Subject:  rng,
			})
		} else {
			settings.DefaultStrategy = &strategy
		}
	}

	if s.MinConfidence != nil {
		if *s.MinConfidence < 0 || *s.MinConfidence > 1 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid min_confidence",
				Detail:   fmt.Sprintf("Settings: min_confidence %v is outside 0..1.", *s.MinConfidence),
				Subject:  rng,
			})
		} else {
			settings.MinConfidence = s.MinConfidence
		}
	}

	return settings, diags
}
