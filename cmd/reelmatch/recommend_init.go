// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
	"github.com/tomtom215/reelmatch/internal/recommend/reranking"
)

// newService wires the recommenders, the diversifier and the metrics
// recorder into a recommendation service.
func newService(cfg *config.Config) (*recommend.Service, error) {
	logger := logging.Logger()

	rc := cfg.Recommend
	logger.Info().
		Str("collaborative_mode", rc.Collaborative.Mode).
		Int("neighbors", rc.Collaborative.Neighbors).
		Int("workers", rc.Collaborative.Workers).
		Bool("diversity", rc.Diversity.Enabled).
		Float64("diversity_factor", rc.Diversity.Factor).
		Msg("initializing recommendation service")

	svc, err := recommend.NewService(&rc, logger)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	svc.SetCollaborative(algorithms.NewCollaborative(rc.Collaborative))
	svc.SetContentBased(algorithms.NewContentBased(rc.ContentBased))
	svc.SetDiversifier(reranking.NewDiversifier())
	svc.SetRecorder(metrics.NewRecorder())

	return svc, nil
}
