// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

// Snapshot is the per-request view of the data every recommender works on.
// It is built once per request and only read afterwards.
type Snapshot struct {
	// UserID is the target user.
	UserID int

	// Ratings are the implicit ratings derived from the request interactions.
	Ratings []Rating

	// Index provides lookups over Ratings.
	Index *RatingIndex

	// Catalog is the full set of candidate movies, in caller order.
	Catalog []Movie

	history     []Movie
	exclude     map[int]struct{}
	catalogByID map[int]int
}

// NewSnapshot derives ratings from interactions and builds the lookup
// structures for userID. The exclusion set is the union of the watched
// movies and every movie the user interacted with. When watched is empty
// the user's history falls back to the catalog movies they interacted with.
func NewSnapshot(userID int, interactions []Interaction, catalog, watched []Movie) *Snapshot {
	ratings := DeriveRatings(interactions)
	idx := NewRatingIndex(ratings)

	s := &Snapshot{
		UserID:      userID,
		Ratings:     ratings,
		Index:       idx,
		Catalog:     catalog,
		exclude:     make(map[int]struct{}, len(watched)+idx.UserCount(userID)),
		catalogByID: make(map[int]int, len(catalog)),
	}

	for i := range catalog {
		if _, dup := s.catalogByID[catalog[i].ID]; !dup {
			s.catalogByID[catalog[i].ID] = i
		}
	}

	for i := range watched {
		s.exclude[watched[i].ID] = struct{}{}
	}
	for _, movieID := range idx.UserMovies(userID) {
		s.exclude[movieID] = struct{}{}
	}

	if len(watched) > 0 {
		s.history = watched
	} else {
		for _, movieID := range idx.UserMovies(userID) {
			if m, ok := s.Movie(movieID); ok {
				s.history = append(s.history, m)
			}
		}
	}

	return s
}

// Excluded reports whether movieID must not be recommended.
func (s *Snapshot) Excluded(movieID int) bool {
	_, ok := s.exclude[movieID]
	return ok
}

// Movie looks up a catalog movie by ID.
func (s *Snapshot) Movie(movieID int) (Movie, bool) {
	i, ok := s.catalogByID[movieID]
	if !ok {
		return Movie{}, false
	}
	return s.Catalog[i], true
}

// CatalogPosition returns the index of movieID in the catalog, or -1.
func (s *Snapshot) CatalogPosition(movieID int) int {
	i, ok := s.catalogByID[movieID]
	if !ok {
		return -1
	}
	return i
}

// History returns the movies the user's content profile is built from.
func (s *Snapshot) History() []Movie {
	return s.history
}

// UserRatingCount returns the number of ratings the target user has.
func (s *Snapshot) UserRatingCount() int {
	return s.Index.UserCount(s.UserID)
}

// TotalRatingCount returns the number of ratings across all users.
func (s *Snapshot) TotalRatingCount() int {
	return s.Index.Len()
}
