package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// The browser client lives on another origin and sends credentials,
	// so CORS must run first: preflights never carry the auth cookie.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}))
	router.Use(h.withTraceID, h.withLogging, h.recoverPanics)

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
		r.Post("/logout", h.logout)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", h.listMovies)
			r.Post("/", h.createMovie)
			r.Get("/{id}", h.getMovie)
			r.Put("/{id}", h.updateMovie)
			r.Delete("/{id}", h.deleteMovie)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
