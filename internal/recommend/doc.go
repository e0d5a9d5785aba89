// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements a hybrid movie recommendation engine.
//
// # Architecture
//
// A request flows through a fixed pipeline:
//
//	interactions -> ratings -> similarity -> candidates -> hybrid merge -> diversify
//
//   - Ratings: raw interactions are aggregated into implicit ratings per
//     (user, movie) pair (see DeriveRatings).
//   - Candidates: a collaborative recommender and a content-based
//     recommender each score unwatched movies (package algorithms).
//   - Hybrid merge: a Combiner merges the two candidate lists according to
//     a Strategy (weighted, switching, cascade or adaptive).
//   - Diversify: an optional reranker trades relevance for genre variety
//     (package reranking).
//
// # Determinism
//
// Every stage is a pure function of the request data. Ratings keep the
// first-appearance order of their (user, movie) pair, sorts break ties
// explicitly, and parallel work writes into pre-indexed slices, so the same
// request always produces the same ranked list.
//
// # Strategy Selection
//
// The adaptive strategy picks a concrete strategy from data availability:
//
//   - Users with fewer than 3 ratings: switching (content only)
//   - Catalogs with fewer than 100 ratings overall: cascade
//   - Otherwise: weighted, favouring collaborative 0.7 / 0.3
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	svc, err := recommend.NewService(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	svc.SetCollaborative(algorithms.NewCollaborative(cfg.Collaborative))
//	svc.SetContentBased(algorithms.NewContentBased(cfg.ContentBased))
//	svc.SetDiversifier(reranking.NewDiversifier())
//
//	resp, err := svc.Recommend(ctx, recommend.Request{
//	    UserID:        42,
//	    Interactions:  interactions,
//	    Catalog:       catalog,
//	    WatchedMovies: watched,
//	    Limit:         10,
//	})
package recommend
