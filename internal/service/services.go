package service

import (
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
)

// Services aggregates all business-logic components for injection into the
// HTTP layer.
type Services struct {
	AuthService  AuthService
	MovieService MovieService
}

// NewServices wires every service to its repositories and shared validator.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.New()

	return &Services{
		AuthService:  NewAuthService(repositories.UserRepository, validator, cfg.App, logger),
		MovieService: NewMovieService(repositories.MovieRepository, validator, logger),
	}
}
