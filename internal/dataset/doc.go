// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package dataset loads recommendation inputs from JSON files.
//
// Three files make up a run:
//
//	interactions.json  [{"user_id": 1, "movie_id": 7, "type": "rating", "weight": 4.5, "timestamp": "..."}]
//	catalog.json       [{"id": 7, "title": "Alien", "year": 1979, "genres": [{"slug": "horror"}]}]
//	watched.json       [7, 12, 31]
//
// Interactions without a weight take the default weight of their type
// (view 1, rating 3, favorite 4, watch_complete 5). Records are validated
// with the shared validator and rejected with their array index.
package dataset
