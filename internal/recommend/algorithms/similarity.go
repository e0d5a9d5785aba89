// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// DefaultNeighbors is the number of similar users returned when k <= 0.
const DefaultNeighbors = 10

// Neighbor is a user together with their similarity to a target user.
type Neighbor struct {
	UserID     int     `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// PearsonSimilarity computes the Pearson correlation between two users over
// the movies both have rated. Means are taken over the common movies.
// Returns 0 when there is no overlap or either user has zero variance on it.
// The result is symmetric and lies in [-1, 1].
func PearsonSimilarity(idx *recommend.RatingIndex, userA, userB int) float64 {
	a := idx.UserRatings(userA)
	b := idx.UserRatings(userB)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller user's ordered list so the summation order is
	// fixed for a given pair regardless of argument order.
	ordered := idx.UserMovies(userA)
	if len(b) < len(a) || (len(b) == len(a) && userB < userA) {
		ordered = idx.UserMovies(userB)
	}

	common := make([]int, 0, len(ordered))
	for _, movieID := range ordered {
		_, inA := a[movieID]
		_, inB := b[movieID]
		if inA && inB {
			common = append(common, movieID)
		}
	}
	if len(common) == 0 {
		return 0
	}

	var sumA, sumB float64
	for _, movieID := range common {
		sumA += a[movieID]
		sumB += b[movieID]
	}
	meanA := sumA / float64(len(common))
	meanB := sumB / float64(len(common))

	var num, denA, denB float64
	for _, movieID := range common {
		diffA := a[movieID] - meanA
		diffB := b[movieID] - meanB
		num += diffA * diffB
		denA += diffA * diffA
		denB += diffB * diffB
	}

	if denA == 0 || denB == 0 {
		return 0
	}

	return clamp(num/(math.Sqrt(denA)*math.Sqrt(denB)), -1, 1)
}

// CosineSimilarity computes the cosine similarity between two movies over
// the users who rated both. Returns 0 when there is no overlap or either
// vector has zero magnitude. For non-negative ratings the result is in [0, 1].
func CosineSimilarity(idx *recommend.RatingIndex, movieA, movieB int) float64 {
	a := idx.MovieRatings(movieA)
	b := idx.MovieRatings(movieB)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ordered := idx.MovieUsers(movieA)
	if len(b) < len(a) || (len(b) == len(a) && movieB < movieA) {
		ordered = idx.MovieUsers(movieB)
	}

	var dot, normA, normB float64
	overlap := false
	for _, userID := range ordered {
		ra, inA := a[userID]
		rb, inB := b[userID]
		if !inA || !inB {
			continue
		}
		overlap = true
		dot += ra * rb
		normA += ra * ra
		normB += rb * rb
	}

	if !overlap || normA == 0 || normB == 0 {
		return 0
	}

	return clamp(dot/(math.Sqrt(normA)*math.Sqrt(normB)), -1, 1)
}

// FindSimilarUsers returns the k users most similar to userID by Pearson
// correlation, most similar first. Every other user with at least one rating
// is considered; ties keep first-appearance order. Similarities are computed
// by up to workers goroutines and written by index, so the result matches a
// sequential run.
func FindSimilarUsers(ctx context.Context, idx *recommend.RatingIndex, userID, k, workers int) ([]Neighbor, error) {
	if k <= 0 {
		k = DefaultNeighbors
	}
	if workers <= 0 {
		workers = 1
	}

	if idx.UserCount(userID) == 0 {
		return []Neighbor{}, nil
	}

	others := make([]int, 0, len(idx.Users()))
	for _, other := range idx.Users() {
		if other != userID {
			others = append(others, other)
		}
	}

	neighbors := make([]Neighbor, len(others))
	chunkSize := (len(others) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(others); start += chunkSize {
		start := start
		end := min(start+chunkSize, len(others))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if ContextCancelled(gctx) {
					return gctx.Err()
				}
				neighbors[i] = Neighbor{
					UserID:     others[i],
					Similarity: PearsonSimilarity(idx, userID, others[i]),
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}

	return neighbors, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
