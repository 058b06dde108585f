package store

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its exact email.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up an account by its identifier.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// MovieRepository provides persistence for movie records.
//
// None of the single-record operations filter by owner: any authenticated
// caller may read, update, or delete any record. Only the list query honors
// an optional owner filter.
type MovieRepository interface {
	// CreateMovie persists a new record tagged with its owner and returns it
	// with server-assigned fields populated.
	// Returns ErrTitleAlreadyExists on a duplicate title.
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)

	// GetMovie returns a record by ID or ErrMovieNotFound.
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)

	// ListMovies returns one page of records matching the filter,
	// ordered by identifier.
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)

	// CountMovies returns the total number of records matching the filter,
	// ignoring pagination.
	CountMovies(ctx context.Context, filter models.MovieFilter) (int64, error)

	// UpdateMovie overwrites title, year, and poster of an existing record
	// and returns the updated row. Returns ErrMovieNotFound if the ID is
	// absent and ErrTitleAlreadyExists if the new title collides with a
	// different record.
	UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)

	// DeleteMovie removes a record and returns its last-known state.
	// Returns ErrMovieNotFound if the ID is absent.
	DeleteMovie(ctx context.Context, movieID int64) (models.Movie, error)
}
