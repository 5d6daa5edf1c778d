// Package router assembles the route table and middleware chain. It is
// separate from main so tests can build the exact handler the server
// runs.
package router

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aanand-mishra/people-api/internal/auth"
	"github.com/aanand-mishra/people-api/internal/config"
	"github.com/aanand-mishra/people-api/internal/http/handlers/person"
	"github.com/aanand-mishra/people-api/internal/http/middleware"
	"github.com/aanand-mishra/people-api/internal/people"
)

// New builds the full HTTP handler: person routes behind the auth guard,
// the Prometheus endpoint, and the logging/metrics wrappers around
// everything.
//
// Route table:
//
//	POST   /people        create (or upsert, per config)
//	GET    /people        list
//	GET    /people/{id}   get one
//	PUT    /people/{id}   partial update
//	DELETE /people/{id}   delete
//	GET    /metrics       Prometheus exposition
func New(cfg *config.Config, svc *people.Service, authn *auth.Authenticator, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	guard := middleware.Guard(authn, cfg.AuthRequired)

	mux.HandleFunc("POST /people", guard(auth.OpCreate, person.New(svc, cfg.UpsertOnPost)))
	mux.HandleFunc("GET /people", guard(auth.OpRead, person.GetList(svc)))
	mux.HandleFunc("GET /people/{id}", guard(auth.OpRead, person.GetByID(svc)))
	mux.HandleFunc("PUT /people/{id}", guard(auth.OpUpdate, person.Update(svc)))
	mux.HandleFunc("DELETE /people/{id}", guard(auth.OpDelete, person.Delete(svc)))

	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.RequestLogger(log)(middleware.Metrics(mux))
}
