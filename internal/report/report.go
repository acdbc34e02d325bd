package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vk/plangridgo/internal/cycles"
	"github.com/vk/plangridgo/internal/planner"
)

// Format selects the rendering of a plan.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat maps a user-facing format word to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Plan aggregates everything a single planning run produced.
type Plan struct {
	Roadmap      string          `json:"roadmap,omitempty"`
	FeatureCount int             `json:"feature_count"`
	Cycles       []cycles.Report `json:"cycles,omitempty"`
	Result       planner.Result  `json:"plan"`
	QuickWins    []string        `json:"quick_wins,omitempty"`
}

// Render writes the plan to w in the given format.
func Render(w io.Writer, plan *Plan, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, plan)
	case FormatText:
		return renderText(w, plan)
	default:
		return fmt.Errorf("unknown format %d", format)
	}
}

func renderJSON(w io.Writer, plan *Plan) error {
	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func renderText(w io.Writer, plan *Plan) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Roadmap plan (%s strategy, %d features)\n", plan.Result.Strategy, plan.FeatureCount)
	if plan.Roadmap != "" {
		fmt.Fprintf(&b, "Source: %s\n", plan.Roadmap)
	}

	if len(plan.Cycles) > 0 {
		fmt.Fprintf(&b, "\nDependency cycles (%d):\n", len(plan.Cycles))
		for _, c := range plan.Cycles {
			fmt.Fprintf(&b, "  [%s] %s; suggest breaking %s -> %s\n",
				c.Severity, strings.Join(c.Cycle, " -> "), c.BreakFrom, c.BreakTo)
		}
	}

	if len(plan.Result.Groups) > 0 {
		fmt.Fprintf(&b, "\nParallel groups:\n")
		for i, g := range plan.Result.Groups {
			fmt.Fprintf(&b, "  %d. %s (est. %d)\n", i+1, strings.Join(g.Features, ", "), g.EstimatedTime)
		}
	}

	if len(plan.Result.BuildOrder) > 0 {
		fmt.Fprintf(&b, "\nBuild order: %s\n", strings.Join(plan.Result.BuildOrder, " -> "))
	}
	if len(plan.Result.CriticalPath) > 0 {
		fmt.Fprintf(&b, "Critical path: %s\n", strings.Join(plan.Result.CriticalPath, " -> "))
	}
	if len(plan.QuickWins) > 0 {
		fmt.Fprintf(&b, "Quick wins: %s\n", strings.Join(plan.QuickWins, ", "))
	}
	if plan.Result.Notes != "" {
		fmt.Fprintf(&b, "\n%s\n", plan.Result.Notes)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
