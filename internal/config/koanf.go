// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"reelmatch.yaml",
	"reelmatch.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envMappings maps environment variable names (lowercased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Hybrid weights
	"recommend_weight_collaborative":          "recommend.weights.collaborative",
	"recommend_weight_content":                "recommend.weights.content_based",
	"recommend_adaptive_weight_collaborative": "recommend.adaptive_weights.collaborative",
	"recommend_adaptive_weight_content":       "recommend.adaptive_weights.content_based",

	// Thresholds
	"recommend_switching_min_ratings":      "recommend.thresholds.switching_min_ratings",
	"recommend_adaptive_min_user_ratings":  "recommend.thresholds.adaptive_min_user_ratings",
	"recommend_adaptive_min_total_ratings": "recommend.thresholds.adaptive_min_total_ratings",

	// Collaborative filtering
	"recommend_collaborative_mode": "recommend.collaborative.mode",
	"recommend_neighbors":          "recommend.collaborative.neighbors",
	"recommend_workers":            "recommend.collaborative.workers",

	// Content-based filtering
	"recommend_genre_weight":    "recommend.content_based.genre_weight",
	"recommend_country_weight":  "recommend.content_based.country_weight",
	"recommend_director_weight": "recommend.content_based.director_weight",
	"recommend_actor_weight":    "recommend.content_based.actor_weight",
	"recommend_year_weight":     "recommend.content_based.year_weight",
	"recommend_year_window":     "recommend.content_based.year_window",

	// Diversity
	"recommend_diversity_enabled": "recommend.diversity.enabled",
	"recommend_diversity_factor":  "recommend.diversity.factor",

	// Limits
	"recommend_default_limit":        "recommend.limits.default_limit",
	"recommend_max_limit":            "recommend.limits.max_limit",
	"recommend_candidate_multiplier": "recommend.limits.candidate_multiplier",

	// Input
	"interactions_path": "input.interactions_path",
	"catalog_path":      "input.catalog_path",
	"watched_path":      "input.watched_path",

	// Metrics
	"metrics_textfile": "metrics.textfile_path",
}

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: *recommend.DefaultConfig(),
	}
}

// LoadWithKoanf loads configuration from defaults, the first config file
// found, and environment variables, in increasing order of priority.
func LoadWithKoanf() (*Config, error) {
	return LoadFromPath("")
}

// LoadFromPath is LoadWithKoanf with an explicit config file. An empty path
// falls back to CONFIG_PATH and DefaultConfigPaths. A non-empty path that
// does not exist is an error.
func LoadFromPath(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// RECOMMEND_DIVERSITY_FACTOR -> recommend.diversity.factor
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unknown variables return "" and are skipped by the provider.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
