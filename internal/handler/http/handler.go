package http

import (
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieDomain is the Domain attribute stamped onto the refresh
	// token cookie (e.g. "localhost").
	cookieDomain string

	// allowedOrigin is the browser origin granted cross-site access with
	// credentials.
	allowedOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		cookieDomain:  cfg.CookieDomain,
		allowedOrigin: cfg.AllowedOrigin,
		logger:        logger,
	}
}
