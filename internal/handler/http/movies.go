// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/models"
)

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrTokenIsInvalid)
		return
	}

	input, err := decodeMovieInput(r)
	if err != nil {
		log.Debug().Err(err).Msg("create movie: malformed request body")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	movie, err := h.services.MovieService.Create(r.Context(), input, ownerID)
	if err != nil {
		log.Debug().Err(err).Str("title", input.Title).Msg("create movie failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusCreated)
}

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := movieFilterFromQuery(r)

	list, err := h.services.MovieService.List(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("list movies failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrMovieNotFound)
		return
	}

	movie, err := h.services.MovieService.Get(r.Context(), movieID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	movieID, err := movieIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrMovieNotFound)
		return
	}

	input, err := decodeMovieInput(r)
	if err != nil {
		log.Debug().Err(err).Msg("update movie: malformed request body")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	movie, err := h.services.MovieService.Update(r.Context(), movieID, input)
	if err != nil {
		log.Debug().Err(err).Int64("movie_id", movieID).Msg("update movie failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromURL(r)
	if err != nil {
		writeError(w, store.ErrMovieNotFound)
		return
	}

	movie, err := h.services.MovieService.Delete(r.Context(), movieID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func decodeMovieInput(r *http.Request) (input models.MovieInput, err error) {
	err = json.NewDecoder(r.Body).Decode(&input)
	return input, err
}

func movieIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// movieFilterFromQuery reads userId, page, and limit from the query string.
// Values that are absent or unparsable fall back to the service defaults.
func movieFilterFromQuery(r *http.Request) models.MovieFilter {
	var filter models.MovieFilter

	query := r.URL.Query()
	if userID, err := strconv.ParseInt(query.Get("userId"), 10, 64); err == nil {
		filter.UserID = userID
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}
