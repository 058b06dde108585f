package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// TestRoutes_UnsupportedMethodHidden verifies that calling a known route with
// an unregistered method yields 404 instead of chi's default 405.
func TestRoutes_UnsupportedMethodHidden(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.TokenPair, error) {
			return models.TokenPair{}, nil
		},
	}
	h := newTestHandler(t, auth, &mockMovieService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/auth/login", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// TestRoutes_CORSPreflight verifies that an OPTIONS preflight from the
// configured origin is answered before the auth guard runs: preflights never
// carry cookies, so they must not be rejected as unauthenticated, and the
// response must grant the origin with credentials.
func TestRoutes_CORSPreflight(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockMovieService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
	req.Header.Set("Origin", testAllowedOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testAllowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
}

// TestRoutes_CORSActualRequest verifies that a cross-site request carries the
// grant headers even when the handler itself rejects it, so the browser can
// read the error body.
func TestRoutes_CORSActualRequest(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockMovieService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Origin", testAllowedOrigin)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, testAllowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

// TestRoutes_CORSForeignOrigin verifies that an unlisted origin receives no
// grant headers.
func TestRoutes_CORSForeignOrigin(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockMovieService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockMovieService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
