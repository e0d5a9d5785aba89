// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"testing"
	"time"
)

func TestDeriveRatings(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty input", func(t *testing.T) {
		got := DeriveRatings(nil)
		if got == nil || len(got) != 0 {
			t.Errorf("DeriveRatings(nil) = %v, want empty slice", got)
		}
	})

	t.Run("mean weight and latest timestamp", func(t *testing.T) {
		got := DeriveRatings([]Interaction{
			{UserID: 1, MovieID: 10, Weight: 1, Timestamp: t0.Add(2 * time.Hour)},
			{UserID: 1, MovieID: 10, Weight: 5, Timestamp: t0},
			{UserID: 1, MovieID: 10, Weight: 3, Timestamp: t0.Add(time.Hour)},
		})
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Value != 3.0 {
			t.Errorf("Value = %v, want 3.0", got[0].Value)
		}
		if !got[0].Timestamp.Equal(t0.Add(2 * time.Hour)) {
			t.Errorf("Timestamp = %v, want %v", got[0].Timestamp, t0.Add(2*time.Hour))
		}
	})

	t.Run("clamped to rating range", func(t *testing.T) {
		got := DeriveRatings([]Interaction{
			{UserID: 1, MovieID: 1, Weight: 9},
			{UserID: 1, MovieID: 2, Weight: 0},
		})
		if got[0].Value != MaxRating {
			t.Errorf("Value = %v, want %v", got[0].Value, MaxRating)
		}
		if got[1].Value != MinRating {
			t.Errorf("Value = %v, want %v", got[1].Value, MinRating)
		}
	})

	t.Run("first appearance order", func(t *testing.T) {
		got := DeriveRatings([]Interaction{
			{UserID: 2, MovieID: 5, Weight: 1},
			{UserID: 1, MovieID: 7, Weight: 1},
			{UserID: 2, MovieID: 5, Weight: 3},
			{UserID: 1, MovieID: 3, Weight: 4},
		})
		want := []ratingKey{{2, 5}, {1, 7}, {1, 3}}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i, k := range want {
			if got[i].UserID != k.UserID || got[i].MovieID != k.MovieID {
				t.Errorf("ratings[%d] = (%d,%d), want (%d,%d)", i, got[i].UserID, got[i].MovieID, k.UserID, k.MovieID)
			}
		}
		if got[0].Value != 2.0 {
			t.Errorf("ratings[0].Value = %v, want 2.0", got[0].Value)
		}
	})
}

func TestRatingIndex(t *testing.T) {
	idx := NewRatingIndex([]Rating{
		{UserID: 1, MovieID: 10, Value: 5},
		{UserID: 1, MovieID: 20, Value: 3},
		{UserID: 2, MovieID: 10, Value: 4},
		{UserID: 3, MovieID: 30, Value: 1},
	})

	if got := idx.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	if got := idx.UserCount(1); got != 2 {
		t.Errorf("UserCount(1) = %d, want 2", got)
	}
	if got := idx.UserCount(99); got != 0 {
		t.Errorf("UserCount(99) = %d, want 0", got)
	}

	if v, ok := idx.Rating(2, 10); !ok || v != 4 {
		t.Errorf("Rating(2, 10) = %v, %v; want 4, true", v, ok)
	}
	if _, ok := idx.Rating(2, 20); ok {
		t.Error("Rating(2, 20) ok = true, want false")
	}

	if got := idx.MovieRatings(10); len(got) != 2 || got[1] != 5 || got[2] != 4 {
		t.Errorf("MovieRatings(10) = %v", got)
	}
	if got := idx.UserRatings(1); len(got) != 2 {
		t.Errorf("UserRatings(1) = %v", got)
	}

	assertInts(t, "Users()", idx.Users(), []int{1, 2, 3})
	assertInts(t, "Movies()", idx.Movies(), []int{10, 20, 30})
	assertInts(t, "UserMovies(1)", idx.UserMovies(1), []int{10, 20})
	assertInts(t, "MovieUsers(10)", idx.MovieUsers(10), []int{1, 2})
}

func TestRatingIndex_DuplicateRating(t *testing.T) {
	idx := NewRatingIndex([]Rating{
		{UserID: 1, MovieID: 10, Value: 2},
		{UserID: 1, MovieID: 10, Value: 4},
	})

	if got := idx.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if v, _ := idx.Rating(1, 10); v != 4 {
		t.Errorf("Rating(1, 10) = %v, want last value 4", v)
	}
	assertInts(t, "MovieUsers(10)", idx.MovieUsers(10), []int{1})
}

func assertInts(t *testing.T, name string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}
