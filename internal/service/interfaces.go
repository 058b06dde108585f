package service

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// AuthService orchestrates registration, login, and token lifecycle.
// All flows are stateless between requests; issued tokens are self-contained
// and never stored server-side.
type AuthService interface {
	// Register creates a new account and issues an access/refresh pair.
	Register(ctx context.Context, creds models.Credentials) (models.TokenPair, error)

	// Login verifies credentials and issues an access/refresh pair.
	Login(ctx context.Context, creds models.Credentials) (models.TokenPair, error)

	// Refresh verifies a refresh token and rotates both tokens, returning
	// the full user alongside the new pair.
	Refresh(ctx context.Context, refreshToken string) (models.RefreshedSession, error)

	// ParseToken validates a raw JWT string and returns its decoded form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserByID resolves a token subject back to a live account.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// MovieService provides CRUD over movie records.
//
// Get, Update, and Delete deliberately perform no ownership check: any
// authenticated user may operate on any record. Only List honors an
// optional owner filter, and only when the caller supplies one.
type MovieService interface {
	// Create validates the payload and persists a record owned by ownerID.
	Create(ctx context.Context, input models.MovieInput, ownerID int64) (models.Movie, error)

	// List returns a page of records with the total count across the filter.
	List(ctx context.Context, filter models.MovieFilter) (models.MovieList, error)

	// Get returns one record by ID.
	Get(ctx context.Context, movieID int64) (models.Movie, error)

	// Update validates the payload and overwrites an existing record.
	Update(ctx context.Context, movieID int64, input models.MovieInput) (models.Movie, error)

	// Delete removes a record and returns its last-known state.
	Delete(ctx context.Context, movieID int64) (models.Movie, error)
}
