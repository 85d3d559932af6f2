package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"project_factory/core"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encoding problem", "error", err)
	}
}

func writeError(log *slog.Logger, w http.ResponseWriter, status int, message string) {
	writeJSON(log, w, status, errorResponse{Status: statusError, Message: message})
}

// listOptions reads page and limit from the query string. Absent or malformed
// values come back as zero and are clamped to the defaults downstream.
func listOptions(r *http.Request) core.ListOptions {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return core.ListOptions{Page: page, Limit: limit}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewHealthCheckHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(log, w, http.StatusOK, healthResponse{
			Status:  statusSuccess,
			Message: "Healthcheck api route up and running",
		})
	}
}
