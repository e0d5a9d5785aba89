// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"strings"
)

// Strategy selects how collaborative and content-based candidates are merged.
type Strategy int

const (
	// StrategyAdaptive picks one of the concrete strategies from data
	// availability. It is the zero value and the default.
	StrategyAdaptive Strategy = iota

	// StrategyWeighted blends both sources with fixed weights.
	StrategyWeighted

	// StrategySwitching uses exactly one source depending on how many
	// ratings the user has.
	StrategySwitching

	// StrategyCascade fills half the list from collaborative results and
	// the rest from content-based results.
	StrategyCascade
)

// strategyNames lists the accepted strategy names for error messages.
const strategyNames = "adaptive weighted switching cascade"

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAdaptive:
		return "adaptive"
	case StrategyWeighted:
		return "weighted"
	case StrategySwitching:
		return "switching"
	case StrategyCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a strategy name into a Strategy. Matching ignores
// case and surrounding space. The empty string parses as StrategyAdaptive.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "adaptive":
		return StrategyAdaptive, nil
	case "weighted":
		return StrategyWeighted, nil
	case "switching":
		return StrategySwitching, nil
	case "cascade":
		return StrategyCascade, nil
	default:
		return StrategyAdaptive, fmt.Errorf("unknown strategy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	parsed, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Selection is a resolved strategy together with the weights it uses.
type Selection struct {
	Strategy Strategy
	Weights  HybridWeights
}

// SelectStrategy resolves the adaptive strategy:
//
//   - fewer than Thresholds.AdaptiveMinUserRatings user ratings: switching
//   - fewer than Thresholds.AdaptiveMinTotalRatings ratings overall: cascade
//   - otherwise: weighted with AdaptiveWeights
//
// A nil cfg uses DefaultConfig.
func SelectStrategy(userRatings, totalRatings int, cfg *Config) Selection {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	switch {
	case userRatings < cfg.Thresholds.AdaptiveMinUserRatings:
		return Selection{Strategy: StrategySwitching, Weights: cfg.Weights}
	case totalRatings < cfg.Thresholds.AdaptiveMinTotalRatings:
		return Selection{Strategy: StrategyCascade, Weights: cfg.Weights}
	default:
		return Selection{Strategy: StrategyWeighted, Weights: cfg.AdaptiveWeights}
	}
}

// needsCollaborative reports whether the strategy may consume collaborative
// candidates for a user with userRatings ratings.
func (s Strategy) needsCollaborative(userRatings int, cfg *Config) bool {
	switch s {
	case StrategySwitching:
		return userRatings >= cfg.Thresholds.SwitchingMinRatings
	case StrategyWeighted, StrategyCascade:
		return true
	default:
		return false
	}
}

// needsContentBased reports whether the strategy may consume content-based
// candidates for a user with userRatings ratings.
func (s Strategy) needsContentBased(userRatings int, cfg *Config) bool {
	switch s {
	case StrategySwitching:
		return userRatings < cfg.Thresholds.SwitchingMinRatings
	case StrategyWeighted, StrategyCascade:
		return true
	default:
		return false
	}
}
