// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package reranking implements post-processing for recommendation diversity.
//
// Reranking runs after the hybrid merge:
//
//	Recommenders -> Hybrid merge -> Diversifier -> Final ranking
//	(relevance)                      (genre variety)
//
// The Diversifier performs a greedy pass that keeps the top item and then
// repeatedly picks the candidate that best balances its hybrid score against
// its mean genre Jaccard similarity to the items already placed. It is a
// pure permutation: nothing is added or dropped.
//
// # Usage
//
//	d := reranking.NewDiversifier()
//	items = d.Diversify(items, 0.3)
package reranking
