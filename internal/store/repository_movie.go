// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
	"github.com/jackc/pgerrcode"
)

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository] over the "movies" table.
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// database connection and logger.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMovie persists a new record and returns it with server-assigned
// fields populated.
//
// The title carries a global UNIQUE constraint; a unique_violation (23505)
// is mapped to [ErrTitleAlreadyExists] regardless of which user owns the
// conflicting record.
func (r *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMovie, movie.Title, movie.Year, movie.Poster, movie.UserID)

	var created models.Movie
	if err := scanMovie(row, &created); err != nil {
		log.Err(err).Str("func", "*movieRepository.CreateMovie").Msg("error: creating movie failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Movie{}, ErrTitleAlreadyExists
		default:
			return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetMovie returns the record with the given identifier or [ErrMovieNotFound].
func (r *movieRepository) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	var found models.Movie
	row := r.db.QueryRowContext(ctx, getMovieByID, movieID)

	if err := scanMovie(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "*movieRepository.GetMovie").Msg("error: scanning movie failed")
		return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListMovies returns one page of records matching the filter, ordered by
// identifier. The SELECT is assembled with squirrel so the owner predicate
// is only present when the filter requests it.
func (r *movieRepository) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMoviesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error: building list query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error: executing list query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var movie models.Movie
		if err := scanMovie(rows, &movie); err != nil {
			log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error: scanning movie row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return movies, nil
}

// CountMovies returns the total number of records matching the filter,
// ignoring pagination.
func (r *movieRepository) CountMovies(ctx context.Context, filter models.MovieFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountMoviesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.CountMovies").Msg("error: building count query failed")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*movieRepository.CountMovies").Msg("error: executing count query failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateMovie overwrites title, year, and poster of an existing record and
// returns the updated row.
//
// The UNIQUE constraint only fires when the new title belongs to a different
// row, so updating a record to its own unchanged title never collides.
func (r *movieRepository) UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateMovie, movie.Title, movie.Year, movie.Poster, movie.MovieID)

	var updated models.Movie
	if err := scanMovie(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}

		log.Err(err).Str("func", "*movieRepository.UpdateMovie").Msg("error: updating movie failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Movie{}, ErrTitleAlreadyExists
		default:
			return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteMovie removes a record and returns its last-known state via
// DELETE ... RETURNING, matching the contract that callers may want the
// deleted record back.
func (r *movieRepository) DeleteMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, deleteMovie, movieID)

	var deleted models.Movie
	if err := scanMovie(row, &deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "*movieRepository.DeleteMovie").Msg("error: deleting movie failed")
		return models.Movie{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMovie scans one movie row in the canonical column order.
func scanMovie(row rowScanner, m *models.Movie) error {
	return row.Scan(&m.MovieID, &m.Title, &m.Year, &m.Poster, &m.UserID, &m.CreatedAt, &m.UpdatedAt)
}
