package models

// ErrorResponse is the uniform JSON error body returned by the HTTP layer.
//
// Every domain failure is converted to this shape; unclassified errors
// surface as a generic 500 with no internal detail.
type ErrorResponse struct {
	// StatusCode duplicates the HTTP status code in the body.
	StatusCode int `json:"statusCode"`

	// Message is a short human-readable description of the failure.
	Message string `json:"message"`

	// Errors carries per-field validation messages, keyed by the JSON
	// field name. Present only for validation failures.
	Errors map[string]string `json:"errors,omitempty"`
}
