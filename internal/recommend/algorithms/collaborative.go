// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Reasons attached to collaborative candidates.
const (
	reasonUserBasedFormat = "Liked by %d viewers with similar taste"
	reasonUserBasedOne    = "Liked by a viewer with similar taste"
	reasonItemBased       = "Similar to movies you rated highly"
)

// Collaborative implements user-based and item-based collaborative filtering
// over the ratings in a request snapshot. It holds no per-request state and is
// safe for concurrent use.
type Collaborative struct {
	config recommend.CollaborativeConfig
}

// DefaultCollaborativeConfig returns the default collaborative configuration.
func DefaultCollaborativeConfig() recommend.CollaborativeConfig {
	return recommend.DefaultConfig().Collaborative
}

// NewCollaborative creates a collaborative recommender.
func NewCollaborative(cfg recommend.CollaborativeConfig) *Collaborative {
	cfg.Mode = strings.ToLower(cfg.Mode)
	if cfg.Mode == "" {
		cfg.Mode = recommend.CollaborativeModeUser
	}
	if cfg.Neighbors <= 0 {
		cfg.Neighbors = DefaultNeighbors
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Collaborative{config: cfg}
}

// Name returns the recommender identifier.
func (c *Collaborative) Name() string {
	return "collaborative"
}

// Recommend returns collaborative candidates using the configured mode.
// Scores are normalised by the top score into (0, 1].
func (c *Collaborative) Recommend(ctx context.Context, snap *recommend.Snapshot, limit int) ([]recommend.Candidate, error) {
	switch c.config.Mode {
	case recommend.CollaborativeModeItem:
		return c.ItemBased(ctx, snap, limit)
	case recommend.CollaborativeModeBoth:
		user, err := c.userScores(ctx, snap)
		if err != nil {
			return nil, err
		}
		item, err := c.itemScores(ctx, snap)
		if err != nil {
			return nil, err
		}
		return c.finalize(snap, user, item, limit), nil
	default:
		return c.UserBased(ctx, snap, limit)
	}
}

// UserBased scores unwatched movies by the ratings of the K most similar
// users: score(m) = sum(similarity(u, v) * rating(v, m)).
func (c *Collaborative) UserBased(ctx context.Context, snap *recommend.Snapshot, limit int) ([]recommend.Candidate, error) {
	acc, err := c.userScores(ctx, snap)
	if err != nil {
		return nil, err
	}
	return c.finalize(snap, acc, nil, limit), nil
}

// ItemBased scores unwatched catalog movies by their cosine similarity to
// the movies the user rated: score(m) = sum(similarity(r, m) * rating(u, r)).
func (c *Collaborative) ItemBased(ctx context.Context, snap *recommend.Snapshot, limit int) ([]recommend.Candidate, error) {
	acc, err := c.itemScores(ctx, snap)
	if err != nil {
		return nil, err
	}
	return c.finalize(snap, nil, acc, limit), nil
}

func (c *Collaborative) userScores(ctx context.Context, snap *recommend.Snapshot) (*scoreAccumulator, error) {
	acc := newScoreAccumulator()

	neighbors, err := FindSimilarUsers(ctx, snap.Index, snap.UserID, c.config.Neighbors, c.config.Workers)
	if err != nil {
		return nil, err
	}

	for _, n := range neighbors {
		if ContextCancelled(ctx) {
			return nil, ctx.Err()
		}
		for _, movieID := range snap.Index.UserMovies(n.UserID) {
			if snap.Excluded(movieID) || snap.CatalogPosition(movieID) < 0 {
				continue
			}
			rating, _ := snap.Index.Rating(n.UserID, movieID)
			acc.add(movieID, n.Similarity*rating)
			if n.Similarity > 0 && rating > 0 {
				acc.support(movieID)
			}
		}
	}

	return acc, nil
}

func (c *Collaborative) itemScores(ctx context.Context, snap *recommend.Snapshot) (*scoreAccumulator, error) {
	acc := newScoreAccumulator()

	rated := snap.Index.UserMovies(snap.UserID)
	if len(rated) == 0 {
		return acc, nil
	}

	targets := make([]int, 0, len(snap.Catalog))
	for i := range snap.Catalog {
		if !snap.Excluded(snap.Catalog[i].ID) {
			targets = append(targets, snap.Catalog[i].ID)
		}
	}

	scores := make([]float64, len(targets))
	chunkSize := (len(targets) + c.config.Workers - 1) / c.config.Workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(targets); start += chunkSize {
		start := start
		end := min(start+chunkSize, len(targets))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if ContextCancelled(gctx) {
					return gctx.Err()
				}
				var score float64
				for _, ratedID := range rated {
					rating, _ := snap.Index.Rating(snap.UserID, ratedID)
					score += CosineSimilarity(snap.Index, ratedID, targets[i]) * rating
				}
				scores[i] = score
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, movieID := range targets {
		if scores[i] > 0 {
			acc.add(movieID, scores[i])
		}
	}

	return acc, nil
}

// finalize sums the user-based and item-based scores (either may be nil),
// drops non-positive totals, ranks, truncates and normalises.
func (c *Collaborative) finalize(snap *recommend.Snapshot, user, item *scoreAccumulator, limit int) []recommend.Candidate {
	total := newScoreAccumulator()
	if user != nil {
		total.merge(user)
	}
	if item != nil {
		total.merge(item)
	}

	cands := make([]recommend.Candidate, 0, len(total.order))
	for _, movieID := range total.order {
		score := total.scores[movieID]
		if score <= 0 {
			continue
		}
		movie, ok := snap.Movie(movieID)
		if !ok {
			continue
		}

		reasons := make([]string, 0, 2)
		if user != nil {
			switch n := user.supporters[movieID]; {
			case n == 1:
				reasons = append(reasons, reasonUserBasedOne)
			case n > 1:
				reasons = append(reasons, fmt.Sprintf(reasonUserBasedFormat, n))
			}
		}
		if item != nil && item.scores[movieID] > 0 {
			reasons = append(reasons, reasonItemBased)
		}

		cands = append(cands, recommend.Candidate{
			Movie:   movie,
			Score:   score,
			Reasons: reasons,
		})
	}

	cands = rankCandidates(cands, limit)
	normalizeByMax(cands)
	return cands
}
