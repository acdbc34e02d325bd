package app

import (
	"context"
	"fmt"

	"github.com/vk/plangridgo/internal/ctxlog"
	"github.com/vk/plangridgo/internal/cycles"
	"github.com/vk/plangridgo/internal/graph"
	"github.com/vk/plangridgo/internal/hcl"
	"github.com/vk/plangridgo/internal/model"
	"github.com/vk/plangridgo/internal/planner"
	"github.com/vk/plangridgo/internal/report"
)

// Run executes the main application logic: load the roadmap, build the
// graph, detect cycles, optimize the build order, and render the plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	loader := hcl.NewLoader()
	roadmap, err := loader.Load(ctx, a.config.RoadmapPath)
	if err != nil {
		return fmt.Errorf("failed to load roadmap: %w", err)
	}

	strategy, err := a.resolveStrategy(roadmap)
	if err != nil {
		return err
	}
	roadmap.ApplyConfidenceThreshold(ctx, a.resolveThreshold(roadmap))

	format, err := report.ParseFormat(a.config.Output)
	if err != nil {
		return err
	}

	a.logger.Debug("Building dependency graph from roadmap.",
		"features", len(roadmap.Features), "dependencies", len(roadmap.Dependencies))
	g, err := graph.Build(roadmap.Features, roadmap.Dependencies)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	cycleReports := cycles.Find(g)
	if len(cycleReports) > 0 {
		a.logger.Warn("Dependency cycles detected.", "count", len(cycleReports))
	}

	result := planner.Optimize(g, strategy)
	wins := planner.QuickWins(g, a.config.QuickWinLimit)

	plan := &report.Plan{
		Roadmap:      a.config.RoadmapPath,
		FeatureCount: g.Len(),
		Cycles:       cycleReports,
		Result:       result,
		QuickWins:    wins,
	}
	if err := report.Render(a.outW, plan, format); err != nil {
		return fmt.Errorf("failed to render plan: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveStrategy picks the planning strategy: the explicit config value
// wins, then the roadmap's settings block, then balanced.
func (a *App) resolveStrategy(roadmap *hcl.Roadmap) (model.Strategy, error) {
	if a.config.Strategy != "" {
		strategy, err := model.ParseStrategy(a.config.Strategy)
		if err != nil {
			return 0, err
		}
		return strategy, nil
	}
	if roadmap.Settings.DefaultStrategy != nil {
		return *roadmap.Settings.DefaultStrategy, nil
	}
	return model.StrategyBalanced, nil
}

// resolveThreshold picks the auto-detected confidence cutoff: the explicit
// config value wins, then the roadmap's settings block, then no cutoff.
func (a *App) resolveThreshold(roadmap *hcl.Roadmap) float64 {
	if a.config.MinConfidence >= 0 {
		return a.config.MinConfidence
	}
	if roadmap.Settings.MinConfidence != nil {
		return *roadmap.Settings.MinConfidence
	}
	return 0
}
