// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Debug().Err(err).Msg("register: malformed request body")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	pair, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		log.Debug().Err(err).Str("email", creds.Email).Msg("register failed")
		writeError(w, err)
		return
	}

	h.setRefreshTokenCookie(w, pair.RefreshToken)
	utils.WriteJSON(w, pair, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Debug().Err(err).Msg("login: malformed request body")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	pair, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		log.Debug().Err(err).Str("email", creds.Email).Msg("login failed")
		writeError(w, err)
		return
	}

	h.setRefreshTokenCookie(w, pair.RefreshToken)
	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		log.Debug().Err(ErrNoRefreshTokenCookie).Send()
		writeError(w, service.ErrTokenIsInvalid)
		return
	}

	session, err := h.services.AuthService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		log.Debug().Err(err).Msg("refresh failed")
		writeError(w, err)
		return
	}

	h.setRefreshTokenCookie(w, session.RefreshToken)
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearRefreshTokenCookie(w)
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func decodeCredentials(r *http.Request) (creds models.Credentials, err error) {
	err = json.NewDecoder(r.Body).Decode(&creds)
	return creds, err
}
