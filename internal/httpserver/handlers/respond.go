package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver/deps"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/logger"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/store/sqlite"
)

// detailResponse is the error body shape the extension already understands.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeStoreError maps store failures to the API error taxonomy: a missing
// id is the caller's problem, anything else is logged and surfaced as a
// generic internal error.
func writeStoreError(w http.ResponseWriter, d deps.Deps, op string, err error) {
	if errors.Is(err, sqlite.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Job not found")
		return
	}
	d.Logger.Error("store operation failed",
		logger.String("op", op),
		logger.Error(err))
	writeDetail(w, http.StatusInternalServerError, "internal error")
}
