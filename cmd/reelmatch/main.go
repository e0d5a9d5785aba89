// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is the reelmatch command line tool.
//
// It loads interactions and a movie catalog from JSON files, runs one
// recommendation request for a user, and prints the response as JSON.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Command line flags
//   - Environment variables (LOG_LEVEL, RECOMMEND_*, INTERACTIONS_PATH, ...)
//   - Config file (-config, CONFIG_PATH, or reelmatch.yaml)
//   - Built-in defaults
//
// # Example Usage
//
//	reelmatch -user 42 -interactions data/interactions.json -catalog data/catalog.json
//
//	reelmatch -user 42 -strategy cascade -limit 20 -factor 0.5 \
//	  -watched data/watched-42.json -metrics-textfile /var/lib/node_exporter/reelmatch.prom
//
// # Exit Codes
//
//	0  success
//	1  runtime failure (I/O, cancelled)
//	2  invalid flags, configuration, or request
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// options holds parsed command line flags. Zero values mean "not set".
type options struct {
	configPath      string
	userID          int
	limit           int
	strategy        string
	noDiversify     bool
	factor          float64
	factorSet       bool
	interactions    string
	catalog         string
	watched         string
	metricsTextfile string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one recommendation request and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.LoadFromPath(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "reelmatch: %v\n", err)
		return exitUsage
	}
	opts.applyTo(cfg)

	logOpts := cfg.LoggingOptions()
	logOpts.Output = stderr
	logging.Init(logOpts)

	ctx = logging.ContextWithLogger(logging.ContextWithNewRequestID(ctx), logging.Logger())
	logger := logging.Ctx(ctx).With().Str("component", "cli").Logger()
	logger.Info().
		Int("user_id", opts.userID).
		Str("interactions", cfg.Input.InteractionsPath).
		Str("catalog", cfg.Input.CatalogPath).
		Msg("starting recommendation run")

	req, err := buildRequest(cfg, opts)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load input data")
		return exitFailure
	}

	svc, err := newService(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create recommendation service")
		return exitUsage
	}

	resp, err := svc.Recommend(ctx, req)
	writeMetrics(cfg.Metrics.TextfilePath)
	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors() {
				logger.Error().
					Str("field", fe.Field()).
					Str("rule", fe.Tag()).
					Str("param", fe.Param()).
					Interface("value", fe.Value()).
					Msg(fe.Error())
			}
			return exitUsage
		}
		logger.Error().Err(err).Msg("recommendation failed")
		return exitFailure
	}

	if err := dataset.WriteJSON(stdout, resp); err != nil {
		logger.Error().Err(err).Msg("failed to write response")
		return exitFailure
	}

	logger.Info().
		Str("request_id", resp.Metadata.RequestID).
		Str("strategy", resp.Metadata.Strategy).
		Int("results", len(resp.Items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation run complete")

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("reelmatch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to YAML config file")
	fs.IntVar(&opts.userID, "user", 0, "target user id")
	fs.IntVar(&opts.limit, "limit", 0, "number of recommendations (default from config)")
	fs.StringVar(&opts.strategy, "strategy", "", "adaptive, weighted, switching or cascade (default adaptive)")
	fs.BoolVar(&opts.noDiversify, "no-diversify", false, "disable diversity reranking")
	fs.Float64Var(&opts.factor, "factor", 0, "diversity factor in [0, 1] (default from config)")
	fs.StringVar(&opts.interactions, "interactions", "", "interactions JSON file (overrides config)")
	fs.StringVar(&opts.catalog, "catalog", "", "catalog JSON file (overrides config)")
	fs.StringVar(&opts.watched, "watched", "", "JSON array of watched movie ids (overrides config)")
	fs.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "reelmatch: unexpected arguments: %v\n", fs.Args())
		return nil, fmt.Errorf("unexpected arguments")
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "factor" {
			opts.factorSet = true
		}
	})
	return opts, nil
}

// applyTo overrides config values with flags that were set.
func (o *options) applyTo(cfg *config.Config) {
	if o.interactions != "" {
		cfg.Input.InteractionsPath = o.interactions
	}
	if o.catalog != "" {
		cfg.Input.CatalogPath = o.catalog
	}
	if o.watched != "" {
		cfg.Input.WatchedPath = o.watched
	}
	if o.metricsTextfile != "" {
		cfg.Metrics.TextfilePath = o.metricsTextfile
	}
}

// buildRequest loads the input files named in cfg into a request.
func buildRequest(cfg *config.Config, opts *options) (recommend.Request, error) {
	if cfg.Input.InteractionsPath == "" || cfg.Input.CatalogPath == "" {
		return recommend.Request{}, fmt.Errorf("interactions and catalog paths are required")
	}

	interactions, err := dataset.LoadInteractions(cfg.Input.InteractionsPath)
	if err != nil {
		return recommend.Request{}, err
	}

	catalog, err := dataset.LoadCatalog(cfg.Input.CatalogPath)
	if err != nil {
		return recommend.Request{}, err
	}

	var watched []recommend.Movie
	if cfg.Input.WatchedPath != "" {
		watched, err = dataset.LoadWatched(cfg.Input.WatchedPath, catalog)
		if err != nil {
			return recommend.Request{}, err
		}
	}

	req := recommend.Request{
		UserID:        opts.userID,
		Interactions:  interactions,
		Catalog:       catalog,
		WatchedMovies: watched,
		Limit:         opts.limit,
		Strategy:      opts.strategy,
	}
	if opts.noDiversify {
		off := false
		req.Diversify = &off
	}
	if opts.factorSet {
		factor := opts.factor
		req.DiversityFactor = &factor
	}
	return req, nil
}

// writeMetrics exports the default registry when a textfile path is configured.
func writeMetrics(path string) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logger := logging.WithComponent("metrics")
		logger.Warn().Err(err).Str("path", path).Msg("failed to write metrics textfile")
	}
}
