// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// LoadInteractions reads a JSON array of interactions from path.
func LoadInteractions(path string) ([]recommend.Interaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open interactions: %w", err)
	}
	defer f.Close()

	items, err := ReadInteractions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ReadInteractions decodes a JSON array of interactions.
//
// An interaction without a weight gets the default weight of its type.
func ReadInteractions(r io.Reader) ([]recommend.Interaction, error) {
	var items []recommend.Interaction
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode interactions: %w", err)
	}

	for i := range items {
		if verr := validation.ValidateStruct(&items[i]); verr != nil {
			return nil, fmt.Errorf("interaction %d: %w", i, verr)
		}
		if items[i].Weight == 0 {
			items[i].Weight = items[i].Type.DefaultWeight()
		}
	}

	if items == nil {
		items = []recommend.Interaction{}
	}
	return items, nil
}

// LoadCatalog reads a JSON array of movies from path.
func LoadCatalog(path string) ([]recommend.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	movies, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return movies, nil
}

// ReadCatalog decodes a JSON array of movies. Movie IDs must be unique.
func ReadCatalog(r io.Reader) ([]recommend.Movie, error) {
	var movies []recommend.Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[int]struct{}, len(movies))
	for i := range movies {
		if verr := validation.ValidateStruct(&movies[i]); verr != nil {
			return nil, fmt.Errorf("movie %d: %w", i, verr)
		}
		if _, dup := seen[movies[i].ID]; dup {
			return nil, fmt.Errorf("movie %d: duplicate id %d", i, movies[i].ID)
		}
		seen[movies[i].ID] = struct{}{}
	}

	if movies == nil {
		movies = []recommend.Movie{}
	}
	return movies, nil
}

// LoadWatched reads a JSON array of movie IDs from path and resolves them
// against catalog.
func LoadWatched(path string, catalog []recommend.Movie) ([]recommend.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open watched: %w", err)
	}
	defer f.Close()

	watched, err := ReadWatched(f, catalog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return watched, nil
}

// ReadWatched decodes a JSON array of movie IDs and returns the matching
// catalog movies in input order. Unknown and repeated IDs are skipped.
func ReadWatched(r io.Reader, catalog []recommend.Movie) ([]recommend.Movie, error) {
	var ids []int
	if err := json.NewDecoder(r).Decode(&ids); err != nil {
		return nil, fmt.Errorf("decode watched: %w", err)
	}
	return ResolveMovies(ids, catalog), nil
}

// ResolveMovies returns the catalog movies for ids in order, skipping
// unknown and repeated IDs.
func ResolveMovies(ids []int, catalog []recommend.Movie) []recommend.Movie {
	byID := make(map[int]int, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = i
	}

	out := make([]recommend.Movie, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		idx, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, catalog[idx])
	}
	return out
}

// WriteJSON encodes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
