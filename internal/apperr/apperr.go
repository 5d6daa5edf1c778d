// Package apperr defines the application's error taxonomy and its mapping
// to HTTP status codes.
//
// Every layer wraps one of these sentinels with fmt.Errorf("...: %w", ...)
// so the HTTP edge can classify a failure with errors.Is without knowing
// which layer produced it.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput covers malformed bodies and failed validation rules.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a create reuses an existing id.
	// The text is part of the API contract.
	ErrConflict = errors.New("Person with this ID already exists")

	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("Person not found")

	// ErrUnauthorized covers every authentication failure — missing
	// credentials, unknown username, wrong password — with one message,
	// so a caller cannot probe which part was wrong.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrForbidden means the caller authenticated but its role does not
	// permit the requested operation.
	ErrForbidden = errors.New("forbidden")

	// ErrIOFailure means the persistence medium could not be read or
	// written.
	ErrIOFailure = errors.New("storage unavailable")

	// ErrCorruptData means a persisted collection could not be parsed.
	// Loads must fail with this rather than silently returning an empty
	// collection, which would look like data loss to the caller.
	ErrCorruptData = errors.New("stored data is corrupt")
)

// Status maps a classified error to its HTTP response code.
// Unknown errors map to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		// Duplicate ids surface as 400 for compatibility with the
		// original API, which had no 409.
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrIOFailure), errors.Is(err, ErrCorruptData):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
