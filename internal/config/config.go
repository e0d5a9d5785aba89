// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Logging   LoggingConfig    `koanf:"logging"`
	Recommend recommend.Config `koanf:"recommend"`
	Input     InputConfig      `koanf:"input"`
	Metrics   MetricsConfig    `koanf:"metrics"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// InputConfig points at the dataset files fed to a recommendation run.
//
// Environment Variables:
//   - INTERACTIONS_PATH: JSON array of interactions
//   - CATALOG_PATH: JSON array of catalog movies
//   - WATCHED_PATH: JSON array of movies the target user has watched (optional)
type InputConfig struct {
	InteractionsPath string `koanf:"interactions_path"`
	CatalogPath      string `koanf:"catalog_path"`
	WatchedPath      string `koanf:"watched_path"`
}

// MetricsConfig holds Prometheus export settings.
//
// Environment Variables:
//   - METRICS_TEXTFILE: write the registry to this file after a run
type MetricsConfig struct {
	// TextfilePath is where metrics are written in the Prometheus text
	// format. Empty disables the export.
	TextfilePath string `koanf:"textfile_path"`
}

// LoggingOptions converts the logging section into logging.Config.
func (c *Config) LoggingOptions() logging.Config {
	opts := logging.DefaultConfig()
	opts.Level = c.Logging.Level
	opts.Format = c.Logging.Format
	opts.Caller = c.Logging.Caller
	return opts
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", c.Logging.Format)
	}
}
