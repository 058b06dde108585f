package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response.
//
// It sets the "Content-Type" header to "application/json" and writes the
// provided HTTP status code before sending the response body. If marshaling
// fails, it responds with 500 Internal Server Error and returns a wrapped
// error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteJSONError writes the uniform error body {statusCode, message} with
// the given status code.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}, statusCode)
}

// WriteValidationError writes a 400 response carrying per-field validation
// messages in the "errors" field, keyed by JSON field name.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) (int, error) {
	return WriteJSON(w, models.ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation error",
		Errors:     fieldErrors,
	}, http.StatusBadRequest)
}
