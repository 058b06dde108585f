// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
)

// writeError converts a service or store error into the JSON error body
// {statusCode, message} and, for validation errors, adds the per-field map.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteValidationError(w, validationErr.Errors)
		return
	}

	utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
}

// knownErrors are the sentinels whose text is safe to echo to the client.
var knownErrors = []error{
	store.ErrEmailAlreadyExists,
	store.ErrTitleAlreadyExists,
	store.ErrNoUserWasFound,
	store.ErrMovieNotFound,
	service.ErrInvalidDataProvided,
	service.ErrWrongPassword,
	service.ErrTokenIsExpired,
	service.ErrTokenIsInvalid,
}

// messageFromError strips service-layer wrapping down to the sentinel text.
// Unrecognised errors render as a generic 500 message so internals never
// reach the client.
func messageFromError(err error) string {
	for _, sentinel := range knownErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return http.StatusText(http.StatusInternalServerError)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists),
		errors.Is(err, store.ErrTitleAlreadyExists),
		errors.Is(err, service.ErrInvalidDataProvided):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNoUserWasFound),
		errors.Is(err, store.ErrMovieNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrTokenIsExpired),
		errors.Is(err, service.ErrTokenIsInvalid):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
