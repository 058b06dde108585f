package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
	"golang.org/x/sync/errgroup"
)

// Pagination defaults applied when the caller omits page or limit.
// No upper bound is enforced on limit.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// movieService is the concrete implementation of MovieService.
type movieService struct {
	movieRepository store.MovieRepository
	validator       *validators.Validator
	logger          *logger.Logger
}

// NewMovieService constructs a MovieService backed by the given repository.
func NewMovieService(movieRepository store.MovieRepository, validator *validators.Validator, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		validator:       validator,
		logger:          logger,
	}
}

// Create validates the payload and persists a record owned by ownerID.
//
// Returns:
//   - *validators.ValidationError when title is missing or year is outside
//     1000..9999 inclusive.
//   - store.ErrTitleAlreadyExists when the title collides with any existing
//     record, regardless of owner.
func (m *movieService) Create(ctx context.Context, input models.MovieInput, ownerID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(input); err != nil {
		log.Error().Str("title", input.Title).Int("year", input.Year).Msg("invalid movie data provided")
		return models.Movie{}, err
	}

	created, err := m.movieRepository.CreateMovie(ctx, models.Movie{
		Title:  input.Title,
		Year:   input.Year,
		Poster: input.Poster,
		UserID: ownerID,
	})
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("movie creation ended with error")
		return models.Movie{}, fmt.Errorf("movie creation ended with error: %w", err)
	}

	return created, nil
}

// List returns one page of records plus the total count across the filter.
//
// Page is 1-indexed; out-of-range page and limit values fall back to the
// defaults. The page of rows and the total count are two independent reads
// issued concurrently; both must complete before the response is assembled.
func (m *movieService) List(ctx context.Context, filter models.MovieFilter) (models.MovieList, error) {
	log := logger.FromContext(ctx)

	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	var (
		movies []models.Movie
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = m.movieRepository.ListMovies(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = m.movieRepository.CountMovies(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Err(err).Int64("user_id", filter.UserID).Msg("movie list query ended with error")
		return models.MovieList{}, fmt.Errorf("movie list query ended with error: %w", err)
	}

	return models.MovieList{
		Data:  movies,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Get returns one record by ID or store.ErrMovieNotFound.
func (m *movieService) Get(ctx context.Context, movieID int64) (models.Movie, error) {
	found, err := m.movieRepository.GetMovie(ctx, movieID)
	if err != nil {
		return models.Movie{}, fmt.Errorf("movie lookup ended with error: %w", err)
	}

	return found, nil
}

// Update validates the payload and overwrites an existing record.
//
// The payload contract is re-checked in full. The title collision check
// excludes the record itself: updating a movie to its own unchanged title
// does not conflict.
func (m *movieService) Update(ctx context.Context, movieID int64, input models.MovieInput) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := m.validator.Validate(input); err != nil {
		log.Error().Int64("id", movieID).Msg("invalid movie data provided")
		return models.Movie{}, err
	}

	updated, err := m.movieRepository.UpdateMovie(ctx, models.Movie{
		MovieID: movieID,
		Title:   input.Title,
		Year:    input.Year,
		Poster:  input.Poster,
	})
	if err != nil {
		log.Err(err).Int64("id", movieID).Msg("movie update ended with error")
		return models.Movie{}, fmt.Errorf("movie update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a record and returns its last-known state, so callers can
// show or undo what was deleted.
func (m *movieService) Delete(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	deleted, err := m.movieRepository.DeleteMovie(ctx, movieID)
	if err != nil {
		log.Err(err).Int64("id", movieID).Msg("movie deletion ended with error")
		return models.Movie{}, fmt.Errorf("movie deletion ended with error: %w", err)
	}

	return deleted, nil
}
