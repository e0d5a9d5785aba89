// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

// Rating bounds.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

type ratingKey struct {
	UserID  int
	MovieID int
}

type ratingAccumulator struct {
	sum   float64
	count int
	last  Rating
}

// DeriveRatings aggregates raw interactions into one implicit rating per
// (user, movie) pair. The rating is the mean interaction weight clamped to
// [MinRating, MaxRating] and carries the latest interaction timestamp.
// Output follows the first-appearance order of each pair.
func DeriveRatings(interactions []Interaction) []Rating {
	if len(interactions) == 0 {
		return []Rating{}
	}

	order := make([]ratingKey, 0, len(interactions))
	acc := make(map[ratingKey]*ratingAccumulator, len(interactions))

	for i := range interactions {
		in := &interactions[i]
		key := ratingKey{UserID: in.UserID, MovieID: in.MovieID}

		a, ok := acc[key]
		if !ok {
			a = &ratingAccumulator{last: Rating{UserID: in.UserID, MovieID: in.MovieID, Timestamp: in.Timestamp}}
			acc[key] = a
			order = append(order, key)
		}

		a.sum += in.Weight
		a.count++
		if in.Timestamp.After(a.last.Timestamp) {
			a.last.Timestamp = in.Timestamp
		}
	}

	ratings := make([]Rating, 0, len(order))
	for _, key := range order {
		a := acc[key]
		r := a.last
		r.Value = clampRating(a.sum / float64(a.count))
		ratings = append(ratings, r)
	}

	return ratings
}

func clampRating(v float64) float64 {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}

// RatingIndex provides per-user and per-movie lookups over a rating set.
// It is immutable after construction and safe for concurrent reads.
type RatingIndex struct {
	byUser  map[int]map[int]float64
	byMovie map[int]map[int]float64

	// Ordered views, first appearance first.
	users      []int
	movies     []int
	userMovies map[int][]int
	movieUsers map[int][]int

	total int
}

// NewRatingIndex builds an index over ratings.
func NewRatingIndex(ratings []Rating) *RatingIndex {
	idx := &RatingIndex{
		byUser:     make(map[int]map[int]float64),
		byMovie:    make(map[int]map[int]float64),
		userMovies: make(map[int][]int),
		movieUsers: make(map[int][]int),
	}

	for i := range ratings {
		r := &ratings[i]

		um, ok := idx.byUser[r.UserID]
		if !ok {
			um = make(map[int]float64)
			idx.byUser[r.UserID] = um
			idx.users = append(idx.users, r.UserID)
		}
		if _, dup := um[r.MovieID]; !dup {
			idx.userMovies[r.UserID] = append(idx.userMovies[r.UserID], r.MovieID)
			idx.total++
		}
		um[r.MovieID] = r.Value

		mm, ok := idx.byMovie[r.MovieID]
		if !ok {
			mm = make(map[int]float64)
			idx.byMovie[r.MovieID] = mm
			idx.movies = append(idx.movies, r.MovieID)
		}
		if _, dup := mm[r.UserID]; !dup {
			idx.movieUsers[r.MovieID] = append(idx.movieUsers[r.MovieID], r.UserID)
		}
		mm[r.UserID] = r.Value
	}

	return idx
}

// Rating returns the rating userID gave movieID.
func (x *RatingIndex) Rating(userID, movieID int) (float64, bool) {
	v, ok := x.byUser[userID][movieID]
	return v, ok
}

// UserRatings returns the movie -> rating map for a user. Callers must not
// modify the returned map.
func (x *RatingIndex) UserRatings(userID int) map[int]float64 {
	return x.byUser[userID]
}

// MovieRatings returns the user -> rating map for a movie. Callers must not
// modify the returned map.
func (x *RatingIndex) MovieRatings(movieID int) map[int]float64 {
	return x.byMovie[movieID]
}

// UserMovies returns the movies a user rated in first-appearance order.
func (x *RatingIndex) UserMovies(userID int) []int {
	return x.userMovies[userID]
}

// MovieUsers returns the users who rated a movie in first-appearance order.
func (x *RatingIndex) MovieUsers(movieID int) []int {
	return x.movieUsers[movieID]
}

// Users returns every user with at least one rating in first-appearance order.
func (x *RatingIndex) Users() []int {
	return x.users
}

// Movies returns every rated movie in first-appearance order.
func (x *RatingIndex) Movies() []int {
	return x.movies
}

// UserCount returns the number of ratings a user has.
func (x *RatingIndex) UserCount(userID int) int {
	return len(x.byUser[userID])
}

// Len returns the total number of ratings.
func (x *RatingIndex) Len() int {
	return x.total
}
