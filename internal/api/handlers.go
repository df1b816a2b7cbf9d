package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexanderramin/upkeep/internal/app"
	"github.com/alexanderramin/upkeep/internal/contract"
	"github.com/alexanderramin/upkeep/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// healthResponse reports whether the process and its database are usable.
type healthResponse struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"db_connected"`
}

// Health returns a handler that performs a liveness check.
func Health(database *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbConnected := database.PingContext(r.Context()) == nil
		resp := healthResponse{Status: "healthy", DBConnected: dbConnected}
		status := http.StatusOK
		if !dbConnected {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}

// Summary returns a handler serving the maintenance snapshot for the
// authenticated caller.
func Summary(summaries app.SummaryUseCase, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := auth.ResolveUser(bearerToken(r))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		resp, err := summaries.Summarize(r.Context(), contract.SummaryRequest{UserID: userID})
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to fetch tasks")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
