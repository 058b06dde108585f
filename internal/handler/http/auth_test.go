// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/models"
)

var validCreds = models.Credentials{
	Email:    "alice@example.com",
	Password: "secret-password",
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created, the token pair in the body, and an HTTP-only refresh cookie.
func TestRegister_Success(t *testing.T) {
	pair := models.TokenPair{UserID: 7, AccessToken: "access.jwt", RefreshToken: "refresh.jwt"}

	auth := &mockAuthService{
		registerFn: func(_ context.Context, creds models.Credentials) (models.TokenPair, error) {
			assert.Equal(t, validCreds, creds)
			return pair, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, pair, got)

	cookie := findCookie(t, rec, refreshTokenCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh.jwt", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, "localhost", cookie.Domain)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.Credentials) (models.TokenPair, error) {
			return models.TokenPair{}, store.ErrEmailAlreadyExists
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, store.ErrEmailAlreadyExists.Error(), resp.Message)
	assert.Nil(t, findCookie(t, rec, refreshTokenCookie))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	pair := models.TokenPair{UserID: 3, AccessToken: "access.jwt", RefreshToken: "refresh.jwt"}

	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.TokenPair, error) {
			assert.Equal(t, validCreds, creds)
			return pair, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, findCookie(t, rec, refreshTokenCookie))

	var got models.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, pair, got)
}

// TestLogin_WrongPassword verifies that a credential mismatch surfaces as
// 401 Unauthorized and no refresh cookie is issued.
func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.TokenPair, error) {
			return models.TokenPair{}, service.ErrWrongPassword
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(t, rec, refreshTokenCookie))
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.TokenPair, error) {
			return models.TokenPair{}, store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(jsonBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// refresh
// ─────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	session := models.RefreshedSession{
		User:         models.User{UserID: 5, Email: "alice@example.com"},
		AccessToken:  "new.access.jwt",
		RefreshToken: "new.refresh.jwt",
	}

	auth := &mockAuthService{
		refreshFn: func(_ context.Context, refreshToken string) (models.RefreshedSession, error) {
			assert.Equal(t, "old.refresh.jwt", refreshToken)
			return session, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: "old.refresh.jwt"})
	rec := httptest.NewRecorder()

	h.refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.RefreshedSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, session.User.UserID, got.User.UserID)
	assert.Equal(t, session.AccessToken, got.AccessToken)

	cookie := findCookie(t, rec, refreshTokenCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "new.refresh.jwt", cookie.Value)
}

// TestRefresh_NoCookie verifies that a refresh request without the cookie is
// rejected as 401 without touching the auth service.
func TestRefresh_NoCookie(t *testing.T) {
	auth := &mockAuthService{
		refreshFn: func(_ context.Context, _ string) (models.RefreshedSession, error) {
			t.Fatal("Refresh must not be called without a cookie")
			return models.RefreshedSession{}, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()

	h.refresh(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		refreshFn: func(_ context.Context, _ string) (models.RefreshedSession, error) {
			return models.RefreshedSession{}, service.ErrTokenIsExpired
		},
	}

	h := newTestHandler(t, auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: "stale.refresh.jwt"})
	rec := httptest.NewRecorder()

	h.refresh(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, service.ErrTokenIsExpired.Error(), resp.Message)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

// TestLogout_ClearsCookie verifies that logout expires the refresh cookie.
func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, refreshTokenCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
