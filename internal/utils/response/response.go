// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Success responses may be any JSON shape (a person, a list, a result
// flag). Error responses always have one shape:
//
//	{ "error": "<human-readable message>" }
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/people-api/internal/apperr"
)

// Response is the error envelope.
type Response struct {
	Error string `json:"error"`
}

// WriteJSON writes data as a JSON body with the given HTTP status code.
// Header() → WriteHeader() → body, in that order — once body bytes are
// written the headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard error envelope.
func GeneralError(err error) Response {
	return Response{Error: err.Error()}
}

// Error classifies err and writes it with the matching status code:
// validator.ValidationErrors become a 400 with per-field messages, apperr
// sentinels map to their documented codes, anything else is a 500.
func Error(w http.ResponseWriter, err error) error {
	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		return WriteJSON(w, http.StatusBadRequest, ValidationError(validateErrs))
	}
	return WriteJSON(w, apperr.Status(err), GeneralError(err))
}

// ValidationError converts validator field errors into one readable
// message, joined with ", " so the client sees a single error string.
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "gt":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		case "contains":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must contain %q", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{Error: strings.Join(errMessages, ", ")}
}
