package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-movie-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE user_id = $1;`

	createMovie = `INSERT INTO movies (title, year, poster, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING movie_id, title, year, poster, user_id, created_at, updated_at;`

	getMovieByID = `SELECT movie_id, title, year, poster, user_id, created_at, updated_at
    FROM movies
    WHERE movie_id = $1;`

	updateMovie = `UPDATE movies
    SET title = $1, year = $2, poster = $3, updated_at = NOW()
    WHERE movie_id = $4
    RETURNING movie_id, title, year, poster, user_id, created_at, updated_at;`

	deleteMovie = `DELETE FROM movies
    WHERE movie_id = $1
    RETURNING movie_id, title, year, poster, user_id, created_at, updated_at;`
)

// movieColumns is the canonical column order used by every movie SELECT,
// matching the scan order in the repository.
var movieColumns = []string{"movie_id", "title", "year", "poster", "user_id", "created_at", "updated_at"}

// buildListMoviesQuery assembles the paginated list SELECT. The owner filter
// is applied only when the filter carries a non-zero UserID; pagination uses
// OFFSET (page-1)*limit with a 1-indexed page.
func buildListMoviesQuery(filter models.MovieFilter) (string, []any, error) {
	builder := sq.Select(movieColumns...).
		From("movies").
		OrderBy("movie_id").
		Offset(uint64((filter.Page - 1) * filter.Limit)).
		Limit(uint64(filter.Limit)).
		PlaceholderFormat(sq.Dollar)

	if filter.UserID != 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}

	return builder.ToSql()
}

// buildCountMoviesQuery assembles the companion COUNT query: same filter,
// no pagination.
func buildCountMoviesQuery(filter models.MovieFilter) (string, []any, error) {
	builder := sq.Select("COUNT(*)").
		From("movies").
		PlaceholderFormat(sq.Dollar)

	if filter.UserID != 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}

	return builder.ToSql()
}
