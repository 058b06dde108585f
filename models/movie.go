package models

import "time"

// Movie represents a single movie record owned by exactly one user.
//
// Title uniqueness is global across all records, not per-owner. This mirrors
// the UNIQUE constraint on the movies table and is intentional: two users
// cannot register the same title independently.
type Movie struct {
	// MovieID is the unique identifier assigned by the database at creation.
	MovieID int64 `json:"id"`

	// Title is the globally unique movie title.
	Title string `json:"title"`

	// Year is the release year. Valid values are 1000..9999 inclusive.
	Year int `json:"year"`

	// Poster is an optional poster reference: a URL or an embedded
	// base64 data URI produced by the browser client. Opaque to the server.
	Poster string `json:"poster,omitempty"`

	// UserID references the owning user. Lookup-only back-reference;
	// users do not enumerate their movies through this model.
	UserID int64 `json:"userId"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// MovieInput is the request payload for creating or updating a movie.
// Validation tags are enforced by the validators package before any
// database interaction.
type MovieInput struct {
	Title  string `json:"title" validate:"required"`
	Year   int    `json:"year" validate:"required,gte=1000,lte=9999"`
	Poster string `json:"poster"`
}

// MovieList is the paginated response shape of the movie list endpoint.
type MovieList struct {
	// Data is the requested page of movie records.
	Data []Movie `json:"data"`

	// Total is the number of records matching the filter across all pages.
	Total int64 `json:"total"`

	// Page is the echoed 1-indexed page number.
	Page int `json:"page"`

	// Limit is the echoed page size.
	Limit int `json:"limit"`
}

// MovieFilter narrows a movie list query. The zero value selects all records.
type MovieFilter struct {
	// UserID restricts results to one owner when non-zero.
	UserID int64

	// Page is 1-indexed; values below 1 are normalized to 1.
	Page int

	// Limit is the page size; values below 1 fall back to the default.
	// No upper bound is enforced.
	Limit int
}
