package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver/deps"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver/handlers"
)

func init() { Register(registerJobs) }

// registerJobs wires the CRUD API consumed by the browser extension.
func registerJobs(r chi.Router, d deps.Deps) {
	r.Route("/api/jobs", func(r chi.Router) {
		r.Post("/", handlers.CreateJob(d))
		r.Get("/", handlers.ListJobs(d))
		r.Get("/{id}", handlers.GetJob(d))
		r.Patch("/{id}", handlers.UpdateJob(d))
		r.Delete("/{id}", handlers.DeleteJob(d))
	})
}
