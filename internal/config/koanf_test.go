// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfigFile writes content to a temporary YAML file and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reelmatch.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Recommend.Weights.Collaborative != 0.6 || cfg.Recommend.Weights.ContentBased != 0.4 {
		t.Errorf("Recommend.Weights = %+v, want 0.6/0.4", cfg.Recommend.Weights)
	}
	if cfg.Recommend.Limits.DefaultLimit != 10 {
		t.Errorf("Recommend.Limits.DefaultLimit = %d, want 10", cfg.Recommend.Limits.DefaultLimit)
	}
	if cfg.Input.InteractionsPath != "" {
		t.Errorf("Input.InteractionsPath = %q, want empty", cfg.Input.InteractionsPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"RECOMMEND_WEIGHT_COLLABORATIVE", "recommend.weights.collaborative"},
		{"RECOMMEND_WEIGHT_CONTENT", "recommend.weights.content_based"},
		{"RECOMMEND_DIVERSITY_FACTOR", "recommend.diversity.factor"},
		{"RECOMMEND_COLLABORATIVE_MODE", "recommend.collaborative.mode"},
		{"RECOMMEND_MAX_LIMIT", "recommend.limits.max_limit"},
		{"INTERACTIONS_PATH", "input.interactions_path"},
		{"METRICS_TEXTFILE", "metrics.textfile_path"},
		{"HOME", ""},
		{"PATH", ""},
		{"RECOMMEND_UNKNOWN", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("env var path", func(t *testing.T) {
		path := writeConfigFile(t, "logging:\n  level: debug\n")
		t.Setenv(ConfigPathEnvVar, path)

		if got := findConfigFile(); got != path {
			t.Errorf("findConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("missing env path falls through", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

		orig := DefaultConfigPaths
		DefaultConfigPaths = []string{filepath.Join(t.TempDir(), "also-missing.yaml")}
		t.Cleanup(func() { DefaultConfigPaths = orig })

		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("default path", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		path := writeConfigFile(t, "logging:\n  level: warn\n")

		orig := DefaultConfigPaths
		DefaultConfigPaths = []string{filepath.Join(t.TempDir(), "missing.yaml"), path}
		t.Cleanup(func() { DefaultConfigPaths = orig })

		if got := findConfigFile(); got != path {
			t.Errorf("findConfigFile() = %q, want %q", got, path)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_WEIGHT_COLLABORATIVE", "0.8")
	t.Setenv("RECOMMEND_WEIGHT_CONTENT", "0.2")
	t.Setenv("RECOMMEND_DIVERSITY_ENABLED", "false")
	t.Setenv("RECOMMEND_NEIGHBORS", "25")
	t.Setenv("CATALOG_PATH", "/data/catalog.json")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.Weights.Collaborative != 0.8 {
		t.Errorf("Weights.Collaborative = %v, want 0.8", cfg.Recommend.Weights.Collaborative)
	}
	if cfg.Recommend.Weights.ContentBased != 0.2 {
		t.Errorf("Weights.ContentBased = %v, want 0.2", cfg.Recommend.Weights.ContentBased)
	}
	if cfg.Recommend.Diversity.Enabled {
		t.Error("Diversity.Enabled = true, want false")
	}
	if cfg.Recommend.Collaborative.Neighbors != 25 {
		t.Errorf("Collaborative.Neighbors = %d, want 25", cfg.Recommend.Collaborative.Neighbors)
	}
	if cfg.Input.CatalogPath != "/data/catalog.json" {
		t.Errorf("Input.CatalogPath = %q, want /data/catalog.json", cfg.Input.CatalogPath)
	}
	// Untouched values keep their defaults.
	if cfg.Recommend.Limits.MaxLimit != 100 {
		t.Errorf("Limits.MaxLimit = %d, want 100", cfg.Recommend.Limits.MaxLimit)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: warn
  format: console
recommend:
  collaborative:
    mode: both
  thresholds:
    adaptive_min_total_ratings: 50
  diversity:
    factor: 0.5
input:
  interactions_path: data/interactions.json
metrics:
  textfile_path: /tmp/reelmatch.prom
`)
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v, want warn/console", cfg.Logging)
	}
	if cfg.Recommend.Collaborative.Mode != "both" {
		t.Errorf("Collaborative.Mode = %q, want both", cfg.Recommend.Collaborative.Mode)
	}
	if cfg.Recommend.Collaborative.Neighbors != 10 {
		t.Errorf("Collaborative.Neighbors = %d, want default 10", cfg.Recommend.Collaborative.Neighbors)
	}
	if cfg.Recommend.Thresholds.AdaptiveMinTotalRatings != 50 {
		t.Errorf("Thresholds.AdaptiveMinTotalRatings = %d, want 50", cfg.Recommend.Thresholds.AdaptiveMinTotalRatings)
	}
	if cfg.Recommend.Diversity.Factor != 0.5 {
		t.Errorf("Diversity.Factor = %v, want 0.5", cfg.Recommend.Diversity.Factor)
	}
	if cfg.Input.InteractionsPath != "data/interactions.json" {
		t.Errorf("Input.InteractionsPath = %q", cfg.Input.InteractionsPath)
	}
	if cfg.Metrics.TextfilePath != "/tmp/reelmatch.prom" {
		t.Errorf("Metrics.TextfilePath = %q", cfg.Metrics.TextfilePath)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "recommend:\n  diversity:\n    factor: 0.5\n")
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("RECOMMEND_DIVERSITY_FACTOR", "0.9")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Recommend.Diversity.Factor != 0.9 {
		t.Errorf("Diversity.Factor = %v, want 0.9 (env wins)", cfg.Recommend.Diversity.Factor)
	}
}

func TestLoadFromPath(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeConfigFile(t, "recommend:\n  limits:\n    default_limit: 5\n")
		cfg, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("LoadFromPath() error = %v", err)
		}
		if cfg.Recommend.Limits.DefaultLimit != 5 {
			t.Errorf("Limits.DefaultLimit = %d, want 5", cfg.Recommend.Limits.DefaultLimit)
		}
	})

	t.Run("missing explicit path", func(t *testing.T) {
		_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Fatal("LoadFromPath() error = nil, want error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "recommend: [unclosed\n")
		if _, err := LoadFromPath(path); err == nil {
			t.Fatal("LoadFromPath() error = nil, want error")
		}
	})
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "invalid log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "logging.level",
		},
		{
			name:    "invalid log format",
			env:     map[string]string{"LOG_FORMAT": "xml"},
			wantErr: "logging.format",
		},
		{
			name:    "diversity factor out of range",
			env:     map[string]string{"RECOMMEND_DIVERSITY_FACTOR": "1.5"},
			wantErr: "diversity.factor",
		},
		{
			name:    "unknown collaborative mode",
			env:     map[string]string{"RECOMMEND_COLLABORATIVE_MODE": "matrix"},
			wantErr: "collaborative.mode",
		},
		{
			name:    "max limit below default",
			env:     map[string]string{"RECOMMEND_MAX_LIMIT": "5"},
			wantErr: "limits.max_limit",
		},
		{
			name: "zero weights",
			env: map[string]string{
				"RECOMMEND_WEIGHT_COLLABORATIVE": "0",
				"RECOMMEND_WEIGHT_CONTENT":       "0",
			},
			wantErr: "weights",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("LoadWithKoanf() error = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadWithKoanf() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoggingOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.Caller = true

	opts := cfg.LoggingOptions()
	if opts.Level != "debug" {
		t.Errorf("Level = %q, want debug", opts.Level)
	}
	if !opts.Caller {
		t.Error("Caller = false, want true")
	}
	if !opts.Timestamp {
		t.Error("Timestamp = false, want true")
	}
}
