// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"sort"
)

// Confidence values attached to hybrid recommendations.
const (
	ConfidenceWeightedBoth    = 0.9
	ConfidenceWeightedSingle  = 0.6
	ConfidenceSwitchContent   = 0.7
	ConfidenceSwitchCollab    = 0.8
	ConfidenceCascadeCollab   = 0.9
	ConfidenceCascadeFallback = 0.75
)

// CombineInput holds everything a strategy handler needs.
type CombineInput struct {
	// Strategy is the requested strategy. StrategyAdaptive is resolved
	// with SelectStrategy before dispatch.
	Strategy Strategy

	// Weights override the configured weights for StrategyWeighted.
	// Zero weights mean "use the configuration".
	Weights HybridWeights

	Collaborative []Candidate
	ContentBased  []Candidate

	UserRatingCount  int
	TotalRatingCount int

	// Exclude reports movies that must never be returned. Nil excludes nothing.
	Exclude func(movieID int) bool

	Limit int
}

// Combiner merges collaborative and content-based candidates.
// It holds no mutable state and is safe for concurrent use.
type Combiner struct {
	config *Config
}

// NewCombiner creates a Combiner. A nil cfg uses DefaultConfig.
func NewCombiner(cfg *Config) *Combiner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Combiner{config: cfg}
}

// Resolve returns the concrete strategy and weights that Combine uses for in.
//
//nolint:gocritic // hugeParam: in passed by value for immutability
func (c *Combiner) Resolve(in CombineInput) Selection {
	if in.Strategy == StrategyAdaptive {
		return SelectStrategy(in.UserRatingCount, in.TotalRatingCount, c.config)
	}
	sel := Selection{Strategy: in.Strategy, Weights: c.config.Weights}
	if in.Weights.Collaborative != 0 || in.Weights.ContentBased != 0 {
		sel.Weights = in.Weights
	}
	return sel
}

// Combine merges the candidate lists with the requested strategy. The result
// never contains an excluded movie, holds at most in.Limit entries, and is
// sorted by descending score with ties broken by ascending movie ID.
//
//nolint:gocritic // hugeParam: in passed by value for immutability
func (c *Combiner) Combine(in CombineInput) []HybridRecommendation {
	if in.Limit <= 0 {
		return []HybridRecommendation{}
	}

	sel := c.Resolve(in)

	var out []HybridRecommendation
	switch sel.Strategy {
	case StrategyWeighted:
		out = c.combineWeighted(in, sel.Weights)
	case StrategySwitching:
		out = c.combineSwitching(in)
	case StrategyCascade:
		out = c.combineCascade(in)
	default:
		out = []HybridRecommendation{}
	}

	sortRecommendations(out)
	if len(out) > in.Limit {
		out = out[:in.Limit]
	}
	return out
}

// combineWeighted unions both lists by movie ID and blends their scores.
//
//nolint:gocritic // hugeParam: in passed by value for immutability
func (c *Combiner) combineWeighted(in CombineInput, w HybridWeights) []HybridRecommendation {
	byID := make(map[int]int)
	merged := make([]HybridRecommendation, 0, len(in.Collaborative)+len(in.ContentBased))

	add := func(cands []Candidate, collaborative bool) {
		for i := range cands {
			cand := &cands[i]
			if excluded(in, cand.Movie.ID) {
				continue
			}
			pos, ok := byID[cand.Movie.ID]
			if !ok {
				pos = len(merged)
				byID[cand.Movie.ID] = pos
				merged = append(merged, HybridRecommendation{Movie: cand.Movie})
			}
			rec := &merged[pos]
			if collaborative {
				rec.Sources.Collaborative = cand.Score
			} else {
				rec.Sources.ContentBased = cand.Score
			}
			rec.Reasons = mergeReasons(rec.Reasons, cand.Reasons)
		}
	}
	add(in.Collaborative, true)
	add(in.ContentBased, false)

	out := merged[:0]
	for _, rec := range merged {
		rec.Score = rec.Sources.Collaborative*w.Collaborative + rec.Sources.ContentBased*w.ContentBased
		if rec.Score <= 0 {
			continue
		}
		rec.Sources.Hybrid = rec.Score
		if rec.Sources.Collaborative > 0 && rec.Sources.ContentBased > 0 {
			rec.Confidence = ConfidenceWeightedBoth
		} else {
			rec.Confidence = ConfidenceWeightedSingle
		}
		out = append(out, rec)
	}
	return out
}

// combineSwitching uses content-based results for users with few ratings and
// collaborative results otherwise.
//
//nolint:gocritic // hugeParam: in passed by value for immutability
func (c *Combiner) combineSwitching(in CombineInput) []HybridRecommendation {
	if in.UserRatingCount < c.config.Thresholds.SwitchingMinRatings {
		return fromCandidates(in, in.ContentBased, false, ConfidenceSwitchContent, in.Limit)
	}
	return fromCandidates(in, in.Collaborative, true, ConfidenceSwitchCollab, in.Limit)
}

// combineCascade takes up to half the list from collaborative results and
// fills the remainder from content-based results not already chosen.
//
//nolint:gocritic // hugeParam: in passed by value for immutability
func (c *Combiner) combineCascade(in CombineInput) []HybridRecommendation {
	slots := (in.Limit + 1) / 2
	out := fromCandidates(in, in.Collaborative, true, ConfidenceCascadeCollab, slots)

	chosen := make(map[int]struct{}, len(out))
	for i := range out {
		chosen[out[i].Movie.ID] = struct{}{}
	}

	remaining := in.Limit - len(out)
	for i := range in.ContentBased {
		if remaining <= 0 {
			break
		}
		cand := &in.ContentBased[i]
		if _, dup := chosen[cand.Movie.ID]; dup || excluded(in, cand.Movie.ID) || cand.Score <= 0 {
			continue
		}
		chosen[cand.Movie.ID] = struct{}{}
		out = append(out, single(cand, false, ConfidenceCascadeFallback))
		remaining--
	}
	return out
}

//nolint:gocritic // hugeParam: in passed by value for immutability
func fromCandidates(in CombineInput, cands []Candidate, collaborative bool, confidence float64, n int) []HybridRecommendation {
	out := make([]HybridRecommendation, 0, min(len(cands), n))
	seen := make(map[int]struct{}, len(cands))
	for i := range cands {
		if len(out) >= n {
			break
		}
		cand := &cands[i]
		if _, dup := seen[cand.Movie.ID]; dup || excluded(in, cand.Movie.ID) || cand.Score <= 0 {
			continue
		}
		seen[cand.Movie.ID] = struct{}{}
		out = append(out, single(cand, collaborative, confidence))
	}
	return out
}

func single(cand *Candidate, collaborative bool, confidence float64) HybridRecommendation {
	rec := HybridRecommendation{
		Movie:      cand.Movie,
		Score:      cand.Score,
		Reasons:    mergeReasons(nil, cand.Reasons),
		Confidence: confidence,
	}
	if collaborative {
		rec.Sources.Collaborative = cand.Score
	} else {
		rec.Sources.ContentBased = cand.Score
	}
	rec.Sources.Hybrid = cand.Score
	return rec
}

//nolint:gocritic // hugeParam: in passed by value for immutability
func excluded(in CombineInput, movieID int) bool {
	return in.Exclude != nil && in.Exclude(movieID)
}

// mergeReasons appends the reasons in add that are not already in dst.
func mergeReasons(dst, add []string) []string {
	if dst == nil {
		dst = make([]string, 0, len(add))
	}
	for _, r := range add {
		dup := false
		for _, existing := range dst {
			if existing == r {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, r)
		}
	}
	return dst
}

// sortRecommendations orders by descending score, then ascending movie ID.
func sortRecommendations(recs []HybridRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Movie.ID < recs[j].Movie.ID
	})
}
