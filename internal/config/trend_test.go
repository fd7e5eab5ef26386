package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTrendConfig(t *testing.T) {
	cfg := DefaultTrendConfig()
	if cfg.BaselineWeek != 0.25 || cfg.BaselineMonth != 0.50 {
		t.Fatalf("default baselines %v/%v, want 0.25/0.50", cfg.BaselineWeek, cfg.BaselineMonth)
	}
	if cfg.FlatBandPercent != 5 {
		t.Fatalf("default flat band %v, want 5", cfg.FlatBandPercent)
	}
	if cfg.WeekWindowDays != 7 || cfg.MonthWindowDays != 30 {
		t.Fatalf("default windows %d/%d, want 7/30", cfg.WeekWindowDays, cfg.MonthWindowDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadTrendConfig(t *testing.T) {
	t.Run("empty_path_keeps_defaults", func(t *testing.T) {
		cfg, err := LoadTrendConfig("")
		if err != nil {
			t.Fatalf("LoadTrendConfig: %v", err)
		}
		if cfg != DefaultTrendConfig() {
			t.Fatalf("empty path changed config: %+v", cfg)
		}
	})

	t.Run("missing_file_keeps_defaults", func(t *testing.T) {
		cfg, err := LoadTrendConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("LoadTrendConfig: %v", err)
		}
		if cfg != DefaultTrendConfig() {
			t.Fatalf("missing file changed config: %+v", cfg)
		}
	})

	t.Run("yaml_overrides_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trend.yaml")
		raw := "baseline_week: 0.4\nflat_band_percent: 2\n"
		if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := LoadTrendConfig(path)
		if err != nil {
			t.Fatalf("LoadTrendConfig: %v", err)
		}
		if cfg.BaselineWeek != 0.4 || cfg.FlatBandPercent != 2 {
			t.Fatalf("overrides not applied: %+v", cfg)
		}
		// Untouched keys keep their defaults.
		if cfg.BaselineMonth != 0.50 || cfg.WeekWindowDays != 7 {
			t.Fatalf("defaults lost on partial override: %+v", cfg)
		}
	})

	t.Run("invalid_values_rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trend.yaml")
		if err := os.WriteFile(path, []byte("baseline_week: 1.5\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadTrendConfig(path); err == nil {
			t.Fatalf("out-of-range baseline should fail validation")
		}
	})

	t.Run("malformed_yaml_rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trend.yaml")
		if err := os.WriteFile(path, []byte(": not yaml ["), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadTrendConfig(path); err == nil {
			t.Fatalf("malformed yaml should be an error")
		}
	})
}

func TestTrendConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TrendConfig)
	}{
		{"negative_flat_band", func(c *TrendConfig) { c.FlatBandPercent = -1 }},
		{"zero_week_window", func(c *TrendConfig) { c.WeekWindowDays = 0 }},
		{"week_exceeds_month", func(c *TrendConfig) { c.WeekWindowDays = 60 }},
		{"baseline_month_negative", func(c *TrendConfig) { c.BaselineMonth = -0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTrendConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
