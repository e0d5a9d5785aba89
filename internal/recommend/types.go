// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// InteractionType classifies a tracked user action on a movie.
type InteractionType int

const (
	// InteractionView is a page or trailer view.
	InteractionView InteractionType = iota
	// InteractionRating is an explicit star rating.
	InteractionRating
	// InteractionFavorite marks a movie as a favorite.
	InteractionFavorite
	// InteractionWatchComplete is a full playback.
	InteractionWatchComplete
)

// String returns the wire name of the interaction type.
func (t InteractionType) String() string {
	switch t {
	case InteractionView:
		return "view"
	case InteractionRating:
		return "rating"
	case InteractionFavorite:
		return "favorite"
	case InteractionWatchComplete:
		return "watch_complete"
	default:
		return "unknown"
	}
}

// DefaultWeight returns the implicit rating weight assigned to an interaction
// that arrives without an explicit weight.
func (t InteractionType) DefaultWeight() float64 {
	switch t {
	case InteractionView:
		return 1.0
	case InteractionRating:
		return 3.0
	case InteractionFavorite:
		return 4.0
	case InteractionWatchComplete:
		return 5.0
	default:
		return 0.0
	}
}

// ParseInteractionType converts a wire name into an InteractionType.
func ParseInteractionType(s string) (InteractionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "view":
		return InteractionView, nil
	case "rating":
		return InteractionRating, nil
	case "favorite", "favourite":
		return InteractionFavorite, nil
	case "watch_complete", "watch-complete", "watchcomplete":
		return InteractionWatchComplete, nil
	default:
		return 0, fmt.Errorf("unknown interaction type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t InteractionType) MarshalText() ([]byte, error) {
	if t < InteractionView || t > InteractionWatchComplete {
		return nil, fmt.Errorf("invalid interaction type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *InteractionType) UnmarshalText(b []byte) error {
	parsed, err := ParseInteractionType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Interaction is a raw, append-only signal recorded by the tracking boundary.
type Interaction struct {
	// UserID identifies the user who acted.
	UserID int `json:"user_id" validate:"gte=0"`

	// MovieID identifies the movie acted upon.
	MovieID int `json:"movie_id" validate:"gte=0"`

	// Type is the kind of action.
	Type InteractionType `json:"type"`

	// Weight is the implicit rating contribution of this interaction.
	Weight float64 `json:"weight" validate:"gte=0"`

	// Timestamp is when the interaction occurred.
	Timestamp time.Time `json:"timestamp"`
}

// Rating is an implicit rating derived from a user's interactions with a movie.
type Rating struct {
	UserID    int       `json:"user_id"`
	MovieID   int       `json:"movie_id"`
	Value     float64   `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

// Term is a catalog taxonomy entry such as a genre, country or person.
type Term struct {
	// Slug is the stable identifier used for matching.
	Slug string `json:"slug"`

	// Name is the display name used in recommendation reasons.
	Name string `json:"name,omitempty"`
}

// Label returns the display name, falling back to the slug.
func (t Term) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Slug
}

// Movie is a catalog entry supplied by the data-access layer.
type Movie struct {
	ID        int    `json:"id" validate:"gte=0"`
	Title     string `json:"title" validate:"required"`
	Year      int    `json:"year,omitempty"`
	Genres    []Term `json:"genres,omitempty"`
	Countries []Term `json:"countries,omitempty"`
	Directors []Term `json:"directors,omitempty"`
	Actors    []Term `json:"actors,omitempty"`
}

// MovieFeatures is the structured feature vector of a movie.
// A UserProfile has the same shape, aggregated over a watch history.
type MovieFeatures struct {
	MovieID   int      `json:"movie_id,omitempty"`
	Genres    []string `json:"genres"`
	Countries []string `json:"countries"`
	Directors []string `json:"directors"`
	Actors    []string `json:"actors"`
	Year      int      `json:"year,omitempty"`

	// Keywords are title tokens. They are carried for compatibility and are
	// not used by any similarity function.
	Keywords []string `json:"keywords,omitempty"`
}

// UserProfile is the aggregated feature profile of a user's watched movies.
type UserProfile = MovieFeatures

// Candidate is a movie scored by a single recommender.
type Candidate struct {
	Movie   Movie    `json:"movie"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// Sources breaks a hybrid score down by contributing recommender.
type Sources struct {
	Collaborative float64 `json:"collaborative"`
	ContentBased  float64 `json:"content_based"`
	Hybrid        float64 `json:"hybrid"`
}

// HybridRecommendation is one entry of the final ranked list.
type HybridRecommendation struct {
	Movie      Movie    `json:"movie"`
	Score      float64  `json:"score"`
	Sources    Sources  `json:"sources"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
}

// Recommender produces scored candidates for the snapshot's target user.
// Implementations must never return a movie in the snapshot's exclusion set
// and must return at most limit candidates sorted by descending score.
type Recommender interface {
	// Name returns the recommender identifier (e.g., "collaborative", "content").
	Name() string

	// Recommend returns up to limit candidates for snap.UserID.
	Recommend(ctx context.Context, snap *Snapshot, limit int) ([]Candidate, error)
}

// Diversifier reorders a ranked list to reduce redundancy.
type Diversifier interface {
	// Name returns the diversifier identifier.
	Name() string

	// Diversify returns a permutation of items. It never adds or drops entries.
	Diversify(items []HybridRecommendation, factor float64) []HybridRecommendation
}

// Recorder receives per-request observations. The metrics package
// provides a Prometheus-backed implementation.
type Recorder interface {
	ObserveRecommendation(strategy string, duration time.Duration, results int, err error)
	ObserveStrategySelection(requested, resolved string)
	ObserveCandidates(source string, count int)
}

// Metrics is a point-in-time snapshot of service counters.
type Metrics struct {
	RequestCount     int64            `json:"request_count"`
	ErrorCount       int64            `json:"error_count"`
	StrategyCounts   map[string]int64 `json:"strategy_counts"`
	AverageLatencyMS float64          `json:"average_latency_ms"`
}

// Request contains parameters for a recommendation request.
type Request struct {
	// RequestID is a unique identifier for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`

	// UserID is the target user.
	UserID int `json:"user_id" validate:"gte=0"`

	// Interactions are the raw interaction signals for all users.
	Interactions []Interaction `json:"interactions"`

	// Catalog is the set of candidate movies.
	Catalog []Movie `json:"catalog"`

	// WatchedMovies are the movies the user has watched. They are excluded
	// from results and form the content-based profile.
	WatchedMovies []Movie `json:"watched_movies,omitempty"`

	// Limit is the number of recommendations to return.
	// Zero uses the configured default.
	Limit int `json:"limit" validate:"gte=0"`

	// Strategy names the hybrid strategy, matched case-insensitively by
	// ParseStrategy. Empty means adaptive.
	Strategy string `json:"strategy,omitempty"`

	// Diversify enables diversity reranking. Nil uses the configured default.
	Diversify *bool `json:"diversify,omitempty"`

	// DiversityFactor trades relevance for diversity. Nil uses the configured default.
	DiversityFactor *float64 `json:"diversity_factor,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// Response contains the ranked recommendations and request metadata.
type Response struct {
	// Items are the recommendations in final order.
	Items []HybridRecommendation `json:"items"`

	// Metadata describes how the result was produced.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains information about the recommendation process.
type ResponseMetadata struct {
	RequestID string `json:"request_id"`
	UserID    int    `json:"user_id"`

	// RequestedStrategy is the strategy named in the request.
	RequestedStrategy string `json:"requested_strategy"`

	// Strategy is the concrete strategy that produced the result.
	Strategy string `json:"strategy"`

	// Weights are the source weights used. Only set for the weighted strategy.
	Weights *HybridWeights `json:"weights,omitempty"`

	UserRatings  int `json:"user_ratings"`
	TotalRatings int `json:"total_ratings"`

	CollaborativeCandidates int `json:"collaborative_candidates"`
	ContentCandidates       int `json:"content_candidates"`

	Diversified     bool    `json:"diversified"`
	DiversityFactor float64 `json:"diversity_factor"`

	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}
