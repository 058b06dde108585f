// Package validators wraps go-playground/validator with the message
// conventions of this API: failures are reported as a map of JSON field
// name to a human-readable message, ready to be embedded into the
// "errors" field of the standard error response body.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator validates request payload structs against their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator instance that reports JSON field names
// (taken from the `json` struct tag) instead of Go field names.
func New() *Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

// Validate checks the struct against its `validate` tags.
// Returns nil when the payload is valid, or a *ValidationError carrying
// per-field messages otherwise.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return newValidationError(errs)
		}
		return err
	}
	return nil
}

// ValidationError carries user-facing validation messages keyed by
// JSON field name.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// newValidationError converts validator.ValidationErrors into per-field
// messages. Numeric range violations on the "year" field reproduce the
// original API message verbatim so existing clients keep working.
func newValidationError(errs validator.ValidationErrors) *ValidationError {
	fieldErrors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()

		switch err.Tag() {
		case "required":
			fieldErrors[field] = fmt.Sprintf("%s is required", field)
		case "email":
			fieldErrors[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			fieldErrors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			fieldErrors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "gte", "lte":
			if field == "year" {
				fieldErrors[field] = "Year must be a four-digit number between 1000 and 9999"
			} else {
				fieldErrors[field] = fmt.Sprintf("%s is out of range", field)
			}
		default:
			fieldErrors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: fieldErrors}
}
