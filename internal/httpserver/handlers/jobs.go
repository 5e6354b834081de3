package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/domain"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver/deps"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/logger"
)

// createJobRequest is the creation payload. Status and applied date are not
// accepted here: creation always starts a record in "Applied" at now.
type createJobRequest struct {
	JobTitle    string  `json:"job_title"`
	Company     *string `json:"company"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

// CreateJob handles POST /api/jobs.
func CreateJob(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if strings.TrimSpace(req.JobTitle) == "" {
			writeDetail(w, http.StatusBadRequest, "job_title is required")
			return
		}

		job, err := d.Store.Create(r.Context(), req.JobTitle, req.Company, req.Description, req.URL)
		if err != nil {
			writeStoreError(w, d, "create", err)
			return
		}

		d.Logger.Info("job application created",
			logger.Int("id", int(job.ID)),
			logger.String("job_title", job.JobTitle))
		writeJSON(w, http.StatusCreated, job)
	}
}

// ListJobs handles GET /api/jobs with an optional ?status= filter.
func ListJobs(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var statuses []string
		if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
			statuses = append(statuses, status)
		}

		jobs, err := d.Store.List(r.Context(), statuses...)
		if err != nil {
			writeStoreError(w, d, "list", err)
			return
		}
		if jobs == nil {
			jobs = []domain.JobApplication{} // always an array on the wire
		}
		writeJSON(w, http.StatusOK, jobs)
	}
}

// GetJob handles GET /api/jobs/{id}.
func GetJob(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := jobID(w, r)
		if !ok {
			return
		}
		job, err := d.Store.Get(r.Context(), id)
		if err != nil {
			writeStoreError(w, d, "get", err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

// UpdateJob handles PATCH /api/jobs/{id}. Only fields present in the body are
// applied; everything else stays untouched.
func UpdateJob(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := jobID(w, r)
		if !ok {
			return
		}

		var patch domain.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
			writeDetail(w, http.StatusBadRequest, "unknown status "+strconv.Quote(*patch.Status))
			return
		}
		if patch.JobTitle != nil && strings.TrimSpace(*patch.JobTitle) == "" {
			writeDetail(w, http.StatusBadRequest, "job_title cannot be empty")
			return
		}

		job, err := d.Store.Update(r.Context(), id, patch)
		if err != nil {
			writeStoreError(w, d, "update", err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

// DeleteJob handles DELETE /api/jobs/{id}.
func DeleteJob(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := jobID(w, r)
		if !ok {
			return
		}
		if err := d.Store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, d, "delete", err)
			return
		}
		writeDetail(w, http.StatusOK, "Job deleted")
	}
}

// jobID parses the {id} URL parameter, writing a 400 on junk input.
func jobID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeDetail(w, http.StatusBadRequest, "invalid job id")
		return 0, false
	}
	return id, true
}
