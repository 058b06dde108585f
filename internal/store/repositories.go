package store

import (
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

// Repositories aggregates all persistence components for injection into the
// service layer.
type Repositories struct {
	UserRepository  UserRepository
	MovieRepository MovieRepository
}

// NewRepositories wires every repository to the shared database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, logger),
		MovieRepository: NewMovieRepository(db, logger),
	}
}
