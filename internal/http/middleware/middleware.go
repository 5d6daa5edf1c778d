// Package middleware holds the cross-cutting HTTP wrappers: request
// logging with per-request ids, Prometheus metrics, and the auth guard
// applied to each route.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/people-api/internal/auth"
	"github.com/aanand-mishra/people-api/internal/types"
	"github.com/aanand-mishra/people-api/internal/utils/response"
)

type ctxKey int

const accountKey ctxKey = iota

// Guard returns a per-route wrapper that authenticates the request and
// enforces the role policy for the given operation.
//
// When required is false the wrapper passes every request straight
// through — the unauthenticated variant of the API is the same system
// with the guard switched off, not a second implementation.
//
// Credentials travel in the plain `username` and `password` request
// headers; that transport is part of the compatibility contract.
func Guard(authn *auth.Authenticator, required bool) func(auth.Operation, http.HandlerFunc) http.HandlerFunc {
	return func(op auth.Operation, next http.HandlerFunc) http.HandlerFunc {
		if !required {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			account, err := authn.Authenticate(
				r.Header.Get("username"),
				r.Header.Get("password"),
			)
			if err != nil {
				response.Error(w, err)
				return
			}

			if err := auth.Authorize(account, op); err != nil {
				response.Error(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey, account)
			next(w, r.WithContext(ctx))
		}
	}
}

// AccountFrom returns the authenticated account attached to the request
// context, if any. There is none when the guard is disabled.
func AccountFrom(ctx context.Context) (types.Account, bool) {
	account, ok := ctx.Value(accountKey).(types.Account)
	return account, ok
}

// RequestLogger logs one structured line per request with a generated
// request id, the route, the response status, and the handling duration.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.Info("request handled",
				slog.String("request_id", uuid.NewString()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusRecorder captures the status code a handler writes, since
// http.ResponseWriter offers no way to read it back.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
