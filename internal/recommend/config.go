// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"strings"
)

// Collaborative filtering modes.
const (
	CollaborativeModeUser = "user"
	CollaborativeModeItem = "item"
	CollaborativeModeBoth = "both"
)

// Config contains all configuration for the recommendation service.
type Config struct {
	// Weights are the source weights used by the weighted strategy when it
	// is requested explicitly.
	Weights HybridWeights `json:"weights" koanf:"weights"`

	// AdaptiveWeights are the source weights used when the adaptive
	// strategy resolves to weighted.
	AdaptiveWeights HybridWeights `json:"adaptive_weights" koanf:"adaptive_weights"`

	// Thresholds contains the rating-count cut-offs used by switching and
	// adaptive selection.
	Thresholds ThresholdConfig `json:"thresholds" koanf:"thresholds"`

	// Collaborative contains parameters for collaborative filtering.
	Collaborative CollaborativeConfig `json:"collaborative" koanf:"collaborative"`

	// ContentBased contains parameters for content-based filtering.
	ContentBased ContentBasedConfig `json:"content_based" koanf:"content_based"`

	// Diversity contains parameters for diversity reranking.
	Diversity DiversityConfig `json:"diversity" koanf:"diversity"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// HybridWeights defines the relative contribution of each source.
type HybridWeights struct {
	// Collaborative is the weight for collaborative filtering.
	Collaborative float64 `json:"collaborative" koanf:"collaborative"`

	// ContentBased is the weight for content-based filtering.
	ContentBased float64 `json:"content_based" koanf:"content_based"`
}

// ThresholdConfig contains rating-count thresholds.
type ThresholdConfig struct {
	// SwitchingMinRatings is the number of user ratings at which the
	// switching strategy moves from content-based to collaborative.
	// Default: 5.
	SwitchingMinRatings int `json:"switching_min_ratings" koanf:"switching_min_ratings"`

	// AdaptiveMinUserRatings is the number of user ratings below which the
	// adaptive strategy resolves to switching.
	// Default: 3.
	AdaptiveMinUserRatings int `json:"adaptive_min_user_ratings" koanf:"adaptive_min_user_ratings"`

	// AdaptiveMinTotalRatings is the number of ratings across all users
	// below which the adaptive strategy resolves to cascade.
	// Default: 100.
	AdaptiveMinTotalRatings int `json:"adaptive_min_total_ratings" koanf:"adaptive_min_total_ratings"`
}

// CollaborativeConfig contains collaborative filtering parameters.
type CollaborativeConfig struct {
	// Mode selects the path that feeds the hybrid: user, item or both.
	// Default: user.
	Mode string `json:"mode" koanf:"mode"`

	// Neighbors is the number of similar users considered (K).
	// Default: 10.
	Neighbors int `json:"neighbors" koanf:"neighbors"`

	// Workers bounds the goroutines used for similarity computation.
	// Default: 4.
	Workers int `json:"workers" koanf:"workers"`
}

// ContentBasedConfig contains content-based filtering parameters.
type ContentBasedConfig struct {
	// GenreWeight is the weight of genre overlap.
	// Default: 0.3.
	GenreWeight float64 `json:"genre_weight" koanf:"genre_weight"`

	// CountryWeight is the weight of country overlap.
	// Default: 0.2.
	CountryWeight float64 `json:"country_weight" koanf:"country_weight"`

	// DirectorWeight is the weight of director overlap.
	// Default: 0.2.
	DirectorWeight float64 `json:"director_weight" koanf:"director_weight"`

	// ActorWeight is the weight of actor overlap.
	// Default: 0.2.
	ActorWeight float64 `json:"actor_weight" koanf:"actor_weight"`

	// YearWeight is the weight of release year proximity.
	// Default: 0.1.
	YearWeight float64 `json:"year_weight" koanf:"year_weight"`

	// YearWindow is the year distance at which proximity reaches zero.
	// Default: 20.
	YearWindow int `json:"year_window" koanf:"year_window"`
}

// DiversityConfig contains diversity reranking parameters.
type DiversityConfig struct {
	// Enabled turns diversification on when a request does not say otherwise.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// Factor trades relevance (0) for diversity (1).
	// Default: 0.3.
	Factor float64 `json:"factor" koanf:"factor"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultLimit is used when a request does not specify a limit.
	// Default: 10.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// MaxLimit is the largest limit a request may ask for.
	// Default: 100.
	MaxLimit int `json:"max_limit" koanf:"max_limit"`

	// CandidateMultiplier scales the number of candidates fetched from each
	// source relative to the requested limit.
	// Default: 2.
	CandidateMultiplier int `json:"candidate_multiplier" koanf:"candidate_multiplier"`
}

// DefaultConfig returns a Config with production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: HybridWeights{
			Collaborative: 0.6,
			ContentBased:  0.4,
		},
		AdaptiveWeights: HybridWeights{
			Collaborative: 0.7,
			ContentBased:  0.3,
		},
		Thresholds: ThresholdConfig{
			SwitchingMinRatings:     5,
			AdaptiveMinUserRatings:  3,
			AdaptiveMinTotalRatings: 100,
		},
		Collaborative: CollaborativeConfig{
			Mode:      CollaborativeModeUser,
			Neighbors: 10,
			Workers:   4,
		},
		ContentBased: ContentBasedConfig{
			GenreWeight:    0.3,
			CountryWeight:  0.2,
			DirectorWeight: 0.2,
			ActorWeight:    0.2,
			YearWeight:     0.1,
			YearWindow:     20,
		},
		Diversity: DiversityConfig{
			Enabled: true,
			Factor:  0.3,
		},
		Limits: LimitsConfig{
			DefaultLimit:        10,
			MaxLimit:            100,
			CandidateMultiplier: 2,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Weights.validate("weights"); err != nil {
		return err
	}
	if err := c.AdaptiveWeights.validate("adaptive_weights"); err != nil {
		return err
	}

	if c.Thresholds.SwitchingMinRatings < 0 {
		return fmt.Errorf("thresholds.switching_min_ratings must be non-negative, got %d", c.Thresholds.SwitchingMinRatings)
	}
	if c.Thresholds.AdaptiveMinUserRatings < 0 {
		return fmt.Errorf("thresholds.adaptive_min_user_ratings must be non-negative, got %d", c.Thresholds.AdaptiveMinUserRatings)
	}
	if c.Thresholds.AdaptiveMinTotalRatings < 0 {
		return fmt.Errorf("thresholds.adaptive_min_total_ratings must be non-negative, got %d", c.Thresholds.AdaptiveMinTotalRatings)
	}

	switch strings.ToLower(c.Collaborative.Mode) {
	case CollaborativeModeUser, CollaborativeModeItem, CollaborativeModeBoth:
	default:
		return fmt.Errorf("collaborative.mode must be one of user, item, both, got %q", c.Collaborative.Mode)
	}
	if c.Collaborative.Neighbors <= 0 {
		return fmt.Errorf("collaborative.neighbors must be positive, got %d", c.Collaborative.Neighbors)
	}
	if c.Collaborative.Workers <= 0 {
		return fmt.Errorf("collaborative.workers must be positive, got %d", c.Collaborative.Workers)
	}

	cb := c.ContentBased
	for name, w := range map[string]float64{
		"genre_weight":    cb.GenreWeight,
		"country_weight":  cb.CountryWeight,
		"director_weight": cb.DirectorWeight,
		"actor_weight":    cb.ActorWeight,
		"year_weight":     cb.YearWeight,
	} {
		if w < 0 {
			return fmt.Errorf("content_based.%s must be non-negative, got %f", name, w)
		}
	}
	if cb.YearWindow <= 0 {
		return fmt.Errorf("content_based.year_window must be positive, got %d", cb.YearWindow)
	}

	if c.Diversity.Factor < 0 || c.Diversity.Factor > 1 {
		return fmt.Errorf("diversity.factor must be in [0, 1], got %f", c.Diversity.Factor)
	}

	if c.Limits.DefaultLimit <= 0 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= limits.default_limit, got %d < %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.CandidateMultiplier < 1 {
		return fmt.Errorf("limits.candidate_multiplier must be at least 1, got %d", c.Limits.CandidateMultiplier)
	}

	return nil
}

//nolint:gocritic // value receiver is intentional for immutable semantics
func (w HybridWeights) validate(prefix string) error {
	if w.Collaborative < 0 {
		return fmt.Errorf("%s.collaborative must be non-negative, got %f", prefix, w.Collaborative)
	}
	if w.ContentBased < 0 {
		return fmt.Errorf("%s.content_based must be non-negative, got %f", prefix, w.ContentBased)
	}
	if w.Collaborative+w.ContentBased == 0 {
		return fmt.Errorf("%s must not both be zero", prefix)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
