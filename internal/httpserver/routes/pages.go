package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver/deps"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver/handlers"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/web"
)

func init() { Register(registerPages) }

// registerPages wires the server-rendered dashboard views and static assets.
func registerPages(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Dashboard(d))
	r.Get("/applications", handlers.Applications(d))
	r.Get("/rejections", handlers.Rejections(d))
	r.Get("/analytics", handlers.Analytics(d))
	r.Handle("/static/*", web.StaticHandler())
}
