// Package config loads the analysis scenario file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Scenario is one run anchor: the fixed end year plus the window span
// (longest trailing window, e.g. 64 for a 1951-2014 reference run).
type Scenario struct {
	EndYear int `mapstructure:"end_year"`
	Span    int `mapstructure:"span"`
}

type Config struct {
	EnsemblePath     string     `mapstructure:"ensemble_path"`
	ObservedPath     string     `mapstructure:"observed_path"`
	ObservedSeriesID string     `mapstructure:"observed_series_id"`
	SkipFailedModels bool       `mapstructure:"skip_failed_models"`
	ChartDir         string     `mapstructure:"chart_dir"`
	Scenarios        []Scenario `mapstructure:"scenarios"`
}

// Load reads and validates the scenario configuration from path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("observed_series_id", "observed")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario config: %w", err)
	}

	if cfg.EnsemblePath == "" {
		return nil, fmt.Errorf("ensemble_path is required")
	}
	if cfg.ObservedPath == "" {
		return nil, fmt.Errorf("observed_path is required")
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("at least one scenario is required")
	}
	for i, s := range cfg.Scenarios {
		if s.EndYear == 0 {
			return nil, fmt.Errorf("scenario %d: end_year is required", i)
		}
		if s.Span < 0 {
			return nil, fmt.Errorf("scenario %d: span must be >= 0", i)
		}
	}
	return &cfg, nil
}
