// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, creds models.Credentials) (models.TokenPair, error)
	loginFn       func(ctx context.Context, creds models.Credentials) (models.TokenPair, error)
	refreshFn     func(ctx context.Context, refreshToken string) (models.RefreshedSession, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	getUserByIDFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.TokenPair, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.TokenPair, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.RefreshedSession, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

// mockMovieService implements service.MovieService for unit tests.
type mockMovieService struct {
	createFn func(ctx context.Context, input models.MovieInput, ownerID int64) (models.Movie, error)
	listFn   func(ctx context.Context, filter models.MovieFilter) (models.MovieList, error)
	getFn    func(ctx context.Context, movieID int64) (models.Movie, error)
	updateFn func(ctx context.Context, movieID int64, input models.MovieInput) (models.Movie, error)
	deleteFn func(ctx context.Context, movieID int64) (models.Movie, error)
}

func (m *mockMovieService) Create(ctx context.Context, input models.MovieInput, ownerID int64) (models.Movie, error) {
	return m.createFn(ctx, input, ownerID)
}

func (m *mockMovieService) List(ctx context.Context, filter models.MovieFilter) (models.MovieList, error) {
	return m.listFn(ctx, filter)
}

func (m *mockMovieService) Get(ctx context.Context, movieID int64) (models.Movie, error) {
	return m.getFn(ctx, movieID)
}

func (m *mockMovieService) Update(ctx context.Context, movieID int64, input models.MovieInput) (models.Movie, error) {
	return m.updateFn(ctx, movieID, input)
}

func (m *mockMovieService) Delete(ctx context.Context, movieID int64) (models.Movie, error) {
	return m.deleteFn(ctx, movieID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testAllowedOrigin is the browser origin configured for cross-site tests.
const testAllowedOrigin = "http://localhost:3000"

// newTestHandler builds a Handler around the given mocks. Either mock may be
// nil when the test exercises only one side of the API.
func newTestHandler(t *testing.T, auth service.AuthService, movies service.MovieService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:  auth,
		MovieService: movies,
	}
	return NewHandler(svcs, config.App{
		CookieDomain:  "localhost",
		AllowedOrigin: testAllowedOrigin,
	}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorBody parses the JSON error envelope written by writeError.
func decodeErrorBody(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}
