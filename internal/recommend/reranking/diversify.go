// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package reranking

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// maxRerankSize bounds the pairwise similarity matrix. Longer lists are
// diversified over their head and the tail is appended in original order.
const maxRerankSize = 10000

// Diversifier reorders a ranked list to trade relevance for genre variety.
//
// The first item always stays first. Each following position goes to the
// remaining item with the highest
//
//	final(i) = score(i) * (1 - f) + diversity(i) * f
//	diversity(i) = 1 - mean(jaccard(genres(i), genres(s)) for s in selected)
//
// where f is the diversity factor. Ties go to the item that was ranked
// higher. With f = 0 the input order is returned unchanged.
type Diversifier struct{}

// NewDiversifier creates a Diversifier.
func NewDiversifier() *Diversifier {
	return &Diversifier{}
}

// Name returns the diversifier identifier.
func (d *Diversifier) Name() string {
	return "genre-diversity"
}

// Diversify returns a reordered copy of items. Entries are never added or
// dropped and the input slice is not modified. factor is clamped to [0, 1].
func (d *Diversifier) Diversify(items []recommend.HybridRecommendation, factor float64) []recommend.HybridRecommendation {
	out := make([]recommend.HybridRecommendation, len(items))
	copy(out, items)

	factor = clampFactor(factor)
	if factor == 0 || len(out) < 3 {
		// With two or fewer items the head is fixed and the order is forced.
		return out
	}

	head := out
	var tail []recommend.HybridRecommendation
	if len(out) > maxRerankSize {
		head, tail = out[:maxRerankSize], out[maxRerankSize:]
	}

	genres := make([]map[string]struct{}, len(head))
	for i := range head {
		genres[i] = genreSet(head[i].Movie.Genres)
	}

	n := len(head)
	order := make([]int, 0, n)
	order = append(order, 0)
	used := make([]bool, n)
	used[0] = true

	// simSum[i] is the running sum of similarities between i and the selected set.
	simSum := make([]float64, n)
	for i := 1; i < n; i++ {
		simSum[i] = jaccard(genres[i], genres[0])
	}

	for len(order) < n {
		best := -1
		bestScore := 0.0
		selected := float64(len(order))

		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			diversity := 1 - simSum[i]/selected
			final := head[i].Score*(1-factor) + diversity*factor
			if best < 0 || final > bestScore {
				best = i
				bestScore = final
			}
		}

		used[best] = true
		order = append(order, best)
		for i := 0; i < n; i++ {
			if !used[i] {
				simSum[i] += jaccard(genres[i], genres[best])
			}
		}
	}

	result := make([]recommend.HybridRecommendation, 0, len(out))
	for _, i := range order {
		result = append(result, head[i])
	}
	return append(result, tail...)
}

func clampFactor(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func genreSet(terms []recommend.Term) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if s := strings.ToLower(strings.TrimSpace(t.Slug)); s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// jaccard computes |A∩B| / |A∪B|. Two empty sets have similarity 0.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for g := range a {
		if _, ok := b[g]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// Ensure Diversifier implements the interface.
var _ recommend.Diversifier = (*Diversifier)(nil)
