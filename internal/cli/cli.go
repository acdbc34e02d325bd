package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/plangridgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("plangridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
PlanGridGo - A deterministic feature-dependency planner for product roadmaps.

Usage:
  plangridgo [options] [ROADMAP_PATH]

Arguments:
  ROADMAP_PATH
    Path to a single .hcl roadmap file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	roadmapFlag := flagSet.String("roadmap", "", "Path to the roadmap file or directory.")
	rFlag := flagSet.String("r", "", "Path to the roadmap file or directory (shorthand).")
	strategyFlag := flagSet.String("strategy", "", "Planning strategy. Options: 'safest', 'balanced', or 'fastest'. Defaults to the roadmap's settings.")
	outputFlag := flagSet.String("output", "text", "Plan output format. Options: 'text' or 'json'.")
	quickWinsFlag := flagSet.Int("quick-wins", 0, "Maximum number of quick wins to report. 0 reports all.")
	minConfidenceFlag := flagSet.Float64("min-confidence", -1, "Drop auto-detected dependencies below this confidence (0..1). Defaults to the roadmap's settings.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *roadmapFlag != "" {
		path = *roadmapFlag
	} else if *rFlag != "" {
		path = *rFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Roadmap path determined.", "path", path)

	if path == "" {
		slog.Debug("No roadmap path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	strategy := strings.ToLower(*strategyFlag)
	switch strategy {
	case "", "safest", "balanced", "fastest":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid strategy: must be 'safest', 'balanced', or 'fastest'"}
	}

	outFormat := strings.ToLower(*outputFlag)
	if outFormat != "text" && outFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'text' or 'json'"}
	}

	if *minConfidenceFlag > 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid min-confidence: must be between 0 and 1"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		RoadmapPath:   path,
		Strategy:      strategy,
		Output:        outFormat,
		QuickWinLimit: *quickWinsFlag,
		MinConfidence: *minConfidenceFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
