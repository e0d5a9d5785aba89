// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "testing"

func testCatalog() []Movie {
	return []Movie{
		{ID: 1, Title: "One"},
		{ID: 2, Title: "Two"},
		{ID: 3, Title: "Three"},
		{ID: 4, Title: "Four"},
	}
}

func TestNewSnapshot_Exclusion(t *testing.T) {
	interactions := []Interaction{
		{UserID: 1, MovieID: 2, Weight: 4},
		{UserID: 2, MovieID: 3, Weight: 5},
	}
	watched := []Movie{{ID: 4, Title: "Four"}}

	snap := NewSnapshot(1, interactions, testCatalog(), watched)

	tests := []struct {
		movieID int
		want    bool
	}{
		{1, false},
		{2, true},  // rated
		{3, false}, // rated by someone else
		{4, true},  // watched
		{99, false},
	}
	for _, tt := range tests {
		if got := snap.Excluded(tt.movieID); got != tt.want {
			t.Errorf("Excluded(%d) = %v, want %v", tt.movieID, got, tt.want)
		}
	}

	if got := snap.UserRatingCount(); got != 1 {
		t.Errorf("UserRatingCount() = %d, want 1", got)
	}
	if got := snap.TotalRatingCount(); got != 2 {
		t.Errorf("TotalRatingCount() = %d, want 2", got)
	}
}

func TestNewSnapshot_History(t *testing.T) {
	interactions := []Interaction{
		{UserID: 1, MovieID: 3, Weight: 4},
		{UserID: 1, MovieID: 42, Weight: 4}, // not in catalog
		{UserID: 1, MovieID: 1, Weight: 2},
	}

	t.Run("watched movies win", func(t *testing.T) {
		watched := []Movie{{ID: 2, Title: "Two"}}
		snap := NewSnapshot(1, interactions, testCatalog(), watched)
		h := snap.History()
		if len(h) != 1 || h[0].ID != 2 {
			t.Errorf("History() = %v, want [2]", h)
		}
	})

	t.Run("falls back to rated catalog movies", func(t *testing.T) {
		snap := NewSnapshot(1, interactions, testCatalog(), nil)
		h := snap.History()
		if len(h) != 2 || h[0].ID != 3 || h[1].ID != 1 {
			t.Errorf("History() = %v, want [3 1]", h)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		snap := NewSnapshot(7, interactions, testCatalog(), nil)
		if h := snap.History(); len(h) != 0 {
			t.Errorf("History() = %v, want empty", h)
		}
		if got := snap.UserRatingCount(); got != 0 {
			t.Errorf("UserRatingCount() = %d, want 0", got)
		}
	})
}

func TestSnapshot_CatalogLookup(t *testing.T) {
	catalog := append(testCatalog(), Movie{ID: 2, Title: "Duplicate"})
	snap := NewSnapshot(1, nil, catalog, nil)

	m, ok := snap.Movie(2)
	if !ok || m.Title != "Two" {
		t.Errorf("Movie(2) = %v, %v; want first entry Two", m, ok)
	}
	if _, ok := snap.Movie(99); ok {
		t.Error("Movie(99) ok = true, want false")
	}
	if got := snap.CatalogPosition(3); got != 2 {
		t.Errorf("CatalogPosition(3) = %d, want 2", got)
	}
	if got := snap.CatalogPosition(99); got != -1 {
		t.Errorf("CatalogPosition(99) = %d, want -1", got)
	}
}
