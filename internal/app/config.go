package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RoadmapPath string // .hcl files

	Strategy      string  // empty means use the roadmap's settings, then "balanced"
	Output        string  // "text" or "json"
	QuickWinLimit int     // <= 0 means no truncation
	MinConfidence float64 // negative means use the roadmap's settings

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.RoadmapPath == "" {
		return nil, errors.New("RoadmapPath is a required configuration field and cannot be empty")
	}
	if cfg.MinConfidence > 1 {
		return nil, fmt.Errorf("MinConfidence %v is outside 0..1", cfg.MinConfidence)
	}
	return &cfg, nil
}
