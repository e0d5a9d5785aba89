// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package algorithms implements the two candidate sources of the hybrid engine.
//
// Both recommenders implement recommend.Recommender and work entirely from
// the per-request recommend.Snapshot. Neither keeps a trained model, so there
// is nothing to persist or warm up.
//
// # Collaborative Filtering
//
// Collaborative scores movies from the ratings of other users:
//
//   - User-based: Pearson correlation over co-rated movies selects the K
//     most similar users, then score(m) = sum(sim(u, v) * rating(v, m)).
//   - Item-based: cosine similarity over co-rating users relates every
//     unwatched catalog movie to the movies the user rated,
//     score(m) = sum(sim(r, m) * rating(u, r)).
//   - Both: the two score maps are summed.
//
// Candidates are ranked, truncated and divided by the top score so they
// share a [0, 1] scale with content-based candidates.
//
// # Content-Based Filtering
//
// ContentBased builds a profile from the user's watched movies (top genres,
// countries, directors and actors plus the mean release year) and scores each
// unwatched catalog movie with a weighted Dice overlap per facet and a linear
// year proximity term.
//
// # Usage Example
//
//	cfg := recommend.DefaultConfig()
//	svc, _ := recommend.NewService(cfg, logger)
//	svc.SetCollaborative(algorithms.NewCollaborative(cfg.Collaborative))
//	svc.SetContentBased(algorithms.NewContentBased(cfg.ContentBased))
//
// # Thread Safety
//
// Recommenders hold only their configuration and are safe for concurrent
// use. Similarity search fans out over an errgroup bounded by the configured
// worker count.
//
// # Performance Considerations
//
//   - User-based: O(U * R) for U users with R ratings each
//   - Item-based: O(C * R * S) for C catalog movies, R user ratings, S raters per movie
//   - Content-based: O(C * F) for F features per movie
package algorithms
