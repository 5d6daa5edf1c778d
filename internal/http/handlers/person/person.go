// Package person contains the HTTP handlers for the person resource.
//
// Each handler is built by a factory that receives its dependencies and
// returns a func with the exact signature the router needs — the closure
// pattern: the factory runs once at route registration, the returned
// handler on every request.
package person

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/people-api/internal/http/middleware"
	"github.com/aanand-mishra/people-api/internal/people"
	"github.com/aanand-mishra/people-api/internal/types"
	"github.com/aanand-mishra/people-api/internal/utils/response"
)

// New handles POST /people.
//
// The body must carry an integer id; name, age, and email default to
// ""/0/"" before validation. With upsert disabled a duplicate id is
// rejected; with upsert enabled an existing record is replaced in place
// (200) instead of created (201).
func New(svc *people.Service, upsert bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in types.CreatePersonInput
		if !decodeBody(w, r, &in) {
			return
		}

		if upsert {
			p, created, err := svc.Upsert(in)
			if err != nil {
				response.Error(w, err)
				return
			}
			status := http.StatusOK
			if created {
				status = http.StatusCreated
			}
			logMutation(r, "person upserted", p.ID)
			response.WriteJSON(w, status, p)
			return
		}

		p, err := svc.Create(in)
		if err != nil {
			response.Error(w, err)
			return
		}

		logMutation(r, "person created", p.ID)
		response.WriteJSON(w, http.StatusCreated, p)
	}
}

// GetList handles GET /people. Returns the full collection in stored
// order — an empty array, never null, when there are no records.
func GetList(svc *people.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List()
		if err != nil {
			slog.Error("error listing people", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, list)
	}
}

// GetByID handles GET /people/{id}.
func GetByID(svc *people.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		p, err := svc.Get(id)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, p)
	}
}

// Update handles PUT /people/{id}: a partial merge — absent fields keep
// their stored value — re-validated against the post-merge record.
func Update(svc *people.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var in types.UpdatePersonInput
		if !decodeBody(w, r, &in) {
			return
		}

		p, err := svc.Update(id, in)
		if err != nil {
			response.Error(w, err)
			return
		}

		logMutation(r, "person updated", id)
		response.WriteJSON(w, http.StatusOK, p)
	}
}

// Delete handles DELETE /people/{id}.
func Delete(svc *people.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(id); err != nil {
			response.Error(w, err)
			return
		}

		logMutation(r, "person deleted", id)
		response.WriteJSON(w, http.StatusOK, map[string]bool{"result": true})
	}
}

// pathID parses the {id} path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into dst, writing a 400 on an
// empty or malformed body.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}
	return true
}

// logMutation records a successful write, including the acting account
// when the request was authenticated.
func logMutation(r *http.Request, msg string, id int) {
	if account, ok := middleware.AccountFrom(r.Context()); ok {
		slog.Info(msg, slog.Int("id", id), slog.String("by", account.Username))
		return
	}
	slog.Info(msg, slog.Int("id", id))
}
