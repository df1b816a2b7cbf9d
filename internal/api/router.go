// Package api provides HTTP routing and handlers for the reporting surface.
package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/alexanderramin/upkeep/internal/app"
	"github.com/gorilla/mux"
)

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(database *sql.DB, summaries app.SummaryUseCase, auth Authenticator, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.Default()
	}

	r := mux.NewRouter()
	r.Use(Recovery(logger))
	r.Use(Logging(logger))

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/health", Health(database)).Methods(http.MethodGet)

	// Both verbs are accepted so external webhook callers can POST while
	// dashboards poll with GET.
	apiRouter.HandleFunc("/summary", Summary(summaries, auth)).
		Methods(http.MethodGet, http.MethodPost)

	return r
}
