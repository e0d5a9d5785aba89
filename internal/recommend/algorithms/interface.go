// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"sort"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// scoreAccumulator collects per-movie scores in first-seen order so that
// iteration never depends on map order.
type scoreAccumulator struct {
	order      []int
	scores     map[int]float64
	supporters map[int]int
}

func newScoreAccumulator() *scoreAccumulator {
	return &scoreAccumulator{
		scores:     make(map[int]float64),
		supporters: make(map[int]int),
	}
}

func (a *scoreAccumulator) add(movieID int, score float64) {
	if _, ok := a.scores[movieID]; !ok {
		a.order = append(a.order, movieID)
	}
	a.scores[movieID] += score
}

func (a *scoreAccumulator) support(movieID int) {
	a.supporters[movieID]++
}

// merge adds every score of other into a.
func (a *scoreAccumulator) merge(other *scoreAccumulator) {
	for _, id := range other.order {
		a.add(id, other.scores[id])
		a.supporters[id] += other.supporters[id]
	}
}

// rankCandidates sorts candidates by descending score with ties broken by
// ascending movie ID and truncates to limit.
func rankCandidates(cands []recommend.Candidate, limit int) []recommend.Candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		return cands[i].Movie.ID < cands[j].Movie.ID
	})
	if limit >= 0 && len(cands) > limit {
		cands = cands[:limit]
	}
	return cands
}

// normalizeByMax divides every score by the top score. The input must be
// sorted descending with a positive top score; the order is preserved and
// scores land in (0, 1].
func normalizeByMax(cands []recommend.Candidate) {
	if len(cands) == 0 || cands[0].Score <= 0 {
		return
	}
	top := cands[0].Score
	for i := range cands {
		cands[i].Score /= top
	}
}

// diceOverlap computes 2|A∩B| / (|A|+|B|) over distinct values.
// Returns 0 when either set is empty.
func diceOverlap(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(setA)+len(setB))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// Ensure all recommenders implement the interface.
var (
	_ recommend.Recommender = (*Collaborative)(nil)
	_ recommend.Recommender = (*ContentBased)(nil)
)
