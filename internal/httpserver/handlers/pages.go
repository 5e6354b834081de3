package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/analytics"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/domain"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver/deps"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/logger"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/web"
)

// Dashboard handles GET /: the kanban board with one column per status.
func Dashboard(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := d.Store.List(r.Context())
		if err != nil {
			renderError(w, d, "dashboard", err)
			return
		}

		byStatus := make(map[string][]domain.JobApplication)
		for _, job := range jobs {
			byStatus[job.Status] = append(byStatus[job.Status], job)
		}

		columns := make([]web.Column, 0, len(domain.Statuses))
		for _, status := range domain.Statuses {
			columns = append(columns, web.Column{
				Status: status,
				Color:  d.Theme[status],
				Jobs:   byStatus[status],
			})
		}

		renderPage(w, d, "dashboard", web.DashboardData{
			Title:   "Board",
			Columns: columns,
			Total:   len(jobs),
		})
	}
}

// Applications handles GET /applications: the flat chronological list.
func Applications(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := d.Store.List(r.Context())
		if err != nil {
			renderError(w, d, "applications", err)
			return
		}
		renderPage(w, d, "applications", web.ApplicationsData{
			Title: "Applications",
			Jobs:  jobs,
			Theme: d.Theme,
			Total: len(jobs),
		})
	}
}

// Rejections handles GET /rejections: only Rejected and Declined records.
func Rejections(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := d.Store.List(r.Context(), domain.StatusRejected, domain.StatusDeclined)
		if err != nil {
			renderError(w, d, "rejections", err)
			return
		}
		renderPage(w, d, "rejections", web.RejectionsData{
			Title: "Rejections",
			Jobs:  jobs,
			Total: len(jobs),
		})
	}
}

// Analytics handles GET /analytics. Any failure here degrades to the generic
// error page instead of taking the process down.
func Analytics(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := d.Store.List(r.Context())
		if err != nil {
			renderError(w, d, "analytics", err)
			return
		}

		report := analytics.Compute(jobs, d.Now())

		statusJSON, err := json.Marshal(report.StatusCounts)
		if err != nil {
			renderError(w, d, "analytics", err)
			return
		}
		timelineJSON, err := json.Marshal(report.Timeline)
		if err != nil {
			renderError(w, d, "analytics", err)
			return
		}

		renderPage(w, d, "analytics", web.AnalyticsData{
			Title:            "Analytics",
			Report:           report,
			StatusCountsJSON: template.JS(statusJSON),
			TimelineJSON:     template.JS(timelineJSON),
			Theme:            d.Theme,
		})
	}
}

func renderPage(w http.ResponseWriter, d deps.Deps, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.Renderer.Render(w, page, data); err != nil {
		// Headers are already out; all we can do is log.
		d.Logger.Error("template rendering failed",
			logger.String("page", page),
			logger.Error(err))
	}
}

// renderError logs the failure and serves the generic error page with a 500.
func renderError(w http.ResponseWriter, d deps.Deps, page string, err error) {
	d.Logger.Error("page handler failed",
		logger.String("page", page),
		logger.Error(err))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = d.Renderer.Render(w, "error", web.ErrorData{
		Title:   "Error",
		Message: "Something went wrong on our side. The details are in the server log.",
	})
}
