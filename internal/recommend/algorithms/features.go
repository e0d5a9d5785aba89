// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Profile sizes.
const (
	ProfileTopGenres    = 5
	ProfileTopCountries = 5
	ProfileTopDirectors = 3
	ProfileTopActors    = 10

	minKeywordLength = 3
)

// ExtractFeatures returns the structured feature vector of a movie.
// Taxonomy fields carry slugs in catalog order without duplicates.
func ExtractFeatures(m recommend.Movie) recommend.MovieFeatures {
	return recommend.MovieFeatures{
		MovieID:   m.ID,
		Genres:    slugs(m.Genres),
		Countries: slugs(m.Countries),
		Directors: slugs(m.Directors),
		Actors:    slugs(m.Actors),
		Year:      m.Year,
		Keywords:  titleKeywords(m.Title),
	}
}

// BuildUserProfile aggregates the features of watched movies into a profile
// holding the most frequent genres, countries, directors and actors (ties
// broken by encounter order) and the mean year of movies with a known year.
func BuildUserProfile(watched []recommend.Movie) recommend.UserProfile {
	genres := newTermCounter()
	countries := newTermCounter()
	directors := newTermCounter()
	actors := newTermCounter()

	var yearSum, yearCount int
	for i := range watched {
		f := ExtractFeatures(watched[i])
		genres.addAll(f.Genres)
		countries.addAll(f.Countries)
		directors.addAll(f.Directors)
		actors.addAll(f.Actors)
		if f.Year > 0 {
			yearSum += f.Year
			yearCount++
		}
	}

	p := recommend.UserProfile{
		Genres:    genres.top(ProfileTopGenres),
		Countries: countries.top(ProfileTopCountries),
		Directors: directors.top(ProfileTopDirectors),
		Actors:    actors.top(ProfileTopActors),
	}
	if yearCount > 0 {
		p.Year = int(math.Round(float64(yearSum) / float64(yearCount)))
	}
	return p
}

// termCounter counts occurrences and remembers first-encounter order.
type termCounter struct {
	order  []string
	counts map[string]int
}

func newTermCounter() *termCounter {
	return &termCounter{counts: make(map[string]int)}
}

func (c *termCounter) addAll(values []string) {
	for _, v := range values {
		if _, ok := c.counts[v]; !ok {
			c.order = append(c.order, v)
		}
		c.counts[v]++
	}
}

// top returns up to n values, most frequent first.
func (c *termCounter) top(n int) []string {
	// Insertion sort keeps equal counts in encounter order.
	ranked := make([]string, 0, len(c.order))
	for _, v := range c.order {
		pos := len(ranked)
		for pos > 0 && c.counts[ranked[pos-1]] < c.counts[v] {
			pos--
		}
		ranked = append(ranked, "")
		copy(ranked[pos+1:], ranked[pos:])
		ranked[pos] = v
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func slugs(terms []recommend.Term) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		s := strings.ToLower(strings.TrimSpace(t.Slug))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// titleKeywords lowercases the title, splits on anything that is not a
// letter or digit and keeps distinct tokens of at least minKeywordLength runes.
func titleKeywords(title string) []string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minKeywordLength {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
