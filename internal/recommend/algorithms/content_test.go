// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

func contentCatalog() []recommend.Movie {
	return []recommend.Movie{
		{ID: 1, Title: "Seven Samurai", Year: 1954, Genres: terms("action", "drama"), Countries: terms("jp"),
			Directors: []recommend.Term{{Slug: "kurosawa", Name: "Akira Kurosawa"}}},
		{ID: 2, Title: "Rashomon", Year: 1950, Genres: terms("drama", "mystery"), Countries: terms("jp"),
			Directors: []recommend.Term{{Slug: "kurosawa", Name: "Akira Kurosawa"}}},
		{ID: 3, Title: "Alien", Year: 1979, Genres: terms("horror"), Countries: terms("us"), Directors: terms("scott")},
		{ID: 4, Title: "Yojimbo", Year: 1961, Genres: []recommend.Term{{Slug: "action", Name: "Action"}}, Countries: terms("jp"),
			Directors: []recommend.Term{{Slug: "kurosawa", Name: "Akira Kurosawa"}}},
		{ID: 5, Title: "Tokyo Story", Year: 1953, Genres: terms("drama"), Countries: terms("jp"), Directors: terms("ozu")},
		{ID: 6, Title: "Ikiru", Year: 1952, Genres: terms("drama"), Countries: terms("jp"),
			Directors: []recommend.Term{{Slug: "kurosawa", Name: "Akira Kurosawa"}}},
	}
}

func TestNewContentBased(t *testing.T) {
	cb := NewContentBased(recommend.ContentBasedConfig{GenreWeight: 1})
	if cb.config.YearWindow != 20 {
		t.Errorf("YearWindow = %d, want default 20", cb.config.YearWindow)
	}
	if got := cb.Name(); got != "content" {
		t.Errorf("Name() = %q, want content", got)
	}
}

func TestContentBased_Score(t *testing.T) {
	cb := NewContentBased(DefaultContentBasedConfig())

	profile := recommend.UserProfile{
		Genres:    []string{"drama"},
		Countries: []string{"jp"},
		Directors: []string{"kurosawa"},
		Actors:    []string{"mifune"},
		Year:      1960,
	}

	tests := []struct {
		name  string
		movie recommend.MovieFeatures
		want  float64
	}{
		{
			name:  "perfect match",
			movie: recommend.MovieFeatures{Genres: []string{"drama"}, Countries: []string{"jp"}, Directors: []string{"kurosawa"}, Actors: []string{"mifune"}, Year: 1960},
			want:  1.0,
		},
		{
			name:  "no overlap far year",
			movie: recommend.MovieFeatures{Genres: []string{"horror"}, Year: 1990},
			want:  0,
		},
		{
			name:  "year only",
			movie: recommend.MovieFeatures{Year: 1970},
			want:  0.05,
		},
		{
			name:  "unknown year",
			movie: recommend.MovieFeatures{Genres: []string{"drama"}},
			want:  0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cb.Score(profile, tt.movie); !almostEqual(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentBased_Recommend(t *testing.T) {
	cb := NewContentBased(DefaultContentBasedConfig())
	catalog := contentCatalog()
	snap := recommend.NewSnapshot(1, nil, catalog, []recommend.Movie{catalog[0], catalog[1]})

	got, err := cb.Recommend(context.Background(), snap, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	ids := candidateIDs(got)
	for _, id := range ids {
		if id == 1 || id == 2 {
			t.Errorf("watched movie %d recommended", id)
		}
		if id == 3 {
			t.Error("unrelated movie 3 recommended")
		}
	}
	if len(ids) != 3 {
		t.Fatalf("ids = %v, want 3 candidates", ids)
	}
	// Ikiru and Yojimbo share the director; Tokyo Story does not.
	if ids[2] != 5 {
		t.Errorf("ids = %v, want Tokyo Story last", ids)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("candidates not sorted: %v", ids)
		}
	}

	var yojimbo recommend.Candidate
	for _, c := range got {
		if c.Movie.ID == 4 {
			yojimbo = c
		}
	}
	wantReasons := []string{
		"Matches genres you enjoy: Action",
		"From countries you watch: jp",
		"Directed by Akira Kurosawa",
	}
	if len(yojimbo.Reasons) != len(wantReasons) {
		t.Fatalf("Reasons = %v, want %v", yojimbo.Reasons, wantReasons)
	}
	for i := range wantReasons {
		if yojimbo.Reasons[i] != wantReasons[i] {
			t.Errorf("Reasons[%d] = %q, want %q", i, yojimbo.Reasons[i], wantReasons[i])
		}
	}
}

func TestContentBased_TiesKeepCatalogOrder(t *testing.T) {
	cb := NewContentBased(DefaultContentBasedConfig())
	catalog := []recommend.Movie{
		{ID: 10, Title: "Watched", Genres: terms("drama")},
		{ID: 30, Title: "Later", Genres: terms("drama")},
		{ID: 20, Title: "Earlier", Genres: terms("drama")},
	}
	snap := recommend.NewSnapshot(1, nil, catalog, catalog[:1])

	got, err := cb.Recommend(context.Background(), snap, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	ids := candidateIDs(got)
	if len(ids) != 2 || ids[0] != 30 || ids[1] != 20 {
		t.Errorf("ids = %v, want [30 20]", ids)
	}
}

func TestContentBased_EmptyHistoryAndLimit(t *testing.T) {
	cb := NewContentBased(DefaultContentBasedConfig())
	catalog := contentCatalog()

	got, err := cb.Recommend(context.Background(), recommend.NewSnapshot(1, nil, catalog, nil), 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Recommend(empty history) = %v, want empty", candidateIDs(got))
	}

	snap := recommend.NewSnapshot(1, nil, catalog, catalog[:1])
	got, err = cb.Recommend(context.Background(), snap, 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestContentBased_HistoryFromRatings(t *testing.T) {
	cb := NewContentBased(DefaultContentBasedConfig())
	catalog := contentCatalog()
	snap := recommend.NewSnapshot(1, []recommend.Interaction{rating(1, 6, 5)}, catalog, nil)

	got, err := cb.Recommend(context.Background(), snap, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(got) == 0 {
		t.Fatal("Recommend() returned nothing, want candidates from rated history")
	}
	for _, c := range got {
		if c.Movie.ID == 6 {
			t.Error("rated movie 6 recommended")
		}
	}
}

func TestContentBased_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cb := NewContentBased(DefaultContentBasedConfig())
	catalog := contentCatalog()
	_, err := cb.Recommend(ctx, recommend.NewSnapshot(1, nil, catalog, catalog[:1]), 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want context.Canceled", err)
	}
}
