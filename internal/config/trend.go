package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrendConfig carries the tunables of the trend engine. The baseline ratios
// are the "expected" share of recent activity a healthy theme shows; observed
// shares above the baseline trend up, below it trend down.
//
// TODO: replace the fixed baselines with a trailing-period historical average
// once enough ingestion history accumulates to compute one.
type TrendConfig struct {
	// BaselineWeek is the expected fraction of a theme's insights created in
	// the last week window.
	BaselineWeek float64 `yaml:"baseline_week"`
	// BaselineMonth is the expected fraction created in the last month window.
	BaselineMonth float64 `yaml:"baseline_month"`
	// FlatBandPercent is the +/- band (in percentage points) around zero
	// within which a trend classifies as flat.
	FlatBandPercent float64 `yaml:"flat_band_percent"`
	// WeekWindowDays and MonthWindowDays define the recency windows.
	WeekWindowDays  int `yaml:"week_window_days"`
	MonthWindowDays int `yaml:"month_window_days"`
}

func DefaultTrendConfig() TrendConfig {
	return TrendConfig{
		BaselineWeek:    0.25,
		BaselineMonth:   0.50,
		FlatBandPercent: 5,
		WeekWindowDays:  7,
		MonthWindowDays: 30,
	}
}

// LoadTrendConfig reads a YAML file over the defaults. A missing path keeps
// the defaults; a present but unreadable file is an error.
func LoadTrendConfig(path string) (TrendConfig, error) {
	cfg := DefaultTrendConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read trend config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse trend config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c TrendConfig) Validate() error {
	if c.BaselineWeek < 0 || c.BaselineWeek > 1 {
		return fmt.Errorf("baseline_week must be in [0,1], got %v", c.BaselineWeek)
	}
	if c.BaselineMonth < 0 || c.BaselineMonth > 1 {
		return fmt.Errorf("baseline_month must be in [0,1], got %v", c.BaselineMonth)
	}
	if c.FlatBandPercent < 0 {
		return fmt.Errorf("flat_band_percent must be >= 0, got %v", c.FlatBandPercent)
	}
	if c.WeekWindowDays <= 0 || c.MonthWindowDays <= 0 {
		return fmt.Errorf("window days must be positive")
	}
	if c.WeekWindowDays > c.MonthWindowDays {
		return fmt.Errorf("week window (%d) cannot exceed month window (%d)", c.WeekWindowDays, c.MonthWindowDays)
	}
	return nil
}
