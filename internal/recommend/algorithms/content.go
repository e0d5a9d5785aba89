// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// ContentBased recommends movies whose metadata resembles the user's watch
// history. The score of a candidate against the user profile is
//
//	score = w_genre    * dice(genres) +
//	        w_country  * dice(countries) +
//	        w_director * dice(directors) +
//	        w_actor    * dice(actors) +
//	        w_year     * max(0, 1 - |Δyear| / window)
//
// where dice(A, B) = 2|A∩B| / (|A|+|B|). Title keywords are not scored.
type ContentBased struct {
	config recommend.ContentBasedConfig
}

// DefaultContentBasedConfig returns the default content-based configuration.
func DefaultContentBasedConfig() recommend.ContentBasedConfig {
	return recommend.DefaultConfig().ContentBased
}

// NewContentBased creates a content-based recommender.
func NewContentBased(cfg recommend.ContentBasedConfig) *ContentBased {
	if cfg.YearWindow <= 0 {
		cfg.YearWindow = DefaultContentBasedConfig().YearWindow
	}
	return &ContentBased{config: cfg}
}

// Name returns the recommender identifier.
func (c *ContentBased) Name() string {
	return "content"
}

// Score computes the similarity of a movie to a user profile in [0, 1]
// when the weights sum to 1.
//
//nolint:gocritic // hugeParam: profiles passed by value for immutability
func (c *ContentBased) Score(profile recommend.UserProfile, movie recommend.MovieFeatures) float64 {
	score := c.config.GenreWeight*diceOverlap(profile.Genres, movie.Genres) +
		c.config.CountryWeight*diceOverlap(profile.Countries, movie.Countries) +
		c.config.DirectorWeight*diceOverlap(profile.Directors, movie.Directors) +
		c.config.ActorWeight*diceOverlap(profile.Actors, movie.Actors) +
		c.config.YearWeight*c.yearProximity(profile.Year, movie.Year)
	return score
}

func (c *ContentBased) yearProximity(a, b int) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	diff := math.Abs(float64(a - b))
	return math.Max(0, 1-diff/float64(c.config.YearWindow))
}

// Recommend scores every unwatched catalog movie against the profile built
// from the user's history and returns the best limit candidates. Ties keep
// catalog order. Movies scoring zero are dropped.
func (c *ContentBased) Recommend(ctx context.Context, snap *recommend.Snapshot, limit int) ([]recommend.Candidate, error) {
	history := snap.History()
	if len(history) == 0 || limit <= 0 {
		return []recommend.Candidate{}, nil
	}

	profile := BuildUserProfile(history)

	cands := make([]recommend.Candidate, 0, len(snap.Catalog))
	for i := range snap.Catalog {
		if i%256 == 0 && ContextCancelled(ctx) {
			return nil, ctx.Err()
		}

		movie := &snap.Catalog[i]
		if snap.Excluded(movie.ID) {
			continue
		}

		score := c.Score(profile, ExtractFeatures(*movie))
		if score <= 0 {
			continue
		}

		cands = append(cands, recommend.Candidate{
			Movie:   *movie,
			Score:   score,
			Reasons: contentReasons(profile, movie),
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
	if len(cands) > limit {
		cands = cands[:limit]
	}

	return cands, nil
}

// contentReasons names the overlapping genres, countries and directors.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func contentReasons(profile recommend.UserProfile, movie *recommend.Movie) []string {
	reasons := make([]string, 0, 3)

	if names := overlapNames(profile.Genres, movie.Genres); len(names) > 0 {
		reasons = append(reasons, "Matches genres you enjoy: "+strings.Join(names, ", "))
	}
	if names := overlapNames(profile.Countries, movie.Countries); len(names) > 0 {
		reasons = append(reasons, "From countries you watch: "+strings.Join(names, ", "))
	}
	if names := overlapNames(profile.Directors, movie.Directors); len(names) > 0 {
		reasons = append(reasons, "Directed by "+strings.Join(names, ", "))
	}

	return reasons
}

// overlapNames returns the display names of terms whose slug is in profile.
func overlapNames(profile []string, terms []recommend.Term) []string {
	if len(profile) == 0 || len(terms) == 0 {
		return nil
	}
	want := toSet(profile)
	var names []string
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		slug := strings.ToLower(strings.TrimSpace(t.Slug))
		if _, ok := want[slug]; !ok {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		names = append(names, t.Label())
	}
	return names
}
