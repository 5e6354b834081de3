package deps

import (
	"time"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/logger"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/store/sqlite"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/web"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time // for testing, defaults to time.Now
	Store          *sqlite.Store    // job application store (explicitly constructed, no globals)
	Renderer       *web.Renderer    // server-side page renderer
	Theme          web.Theme        // status -> color palette for the pages
	AllowedOrigins []string         // CORS origins for the browser extension
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
