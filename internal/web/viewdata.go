package web

import (
	"html/template"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/analytics"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/domain"
)

// Column is one kanban lane on the dashboard.
type Column struct {
	Status string
	Color  string
	Jobs   []domain.JobApplication
}

type DashboardData struct {
	Title   string
	Columns []Column
	Total   int
}

type ApplicationsData struct {
	Title string
	Jobs  []domain.JobApplication
	Theme Theme
	Total int
}

type RejectionsData struct {
	Title string
	Jobs  []domain.JobApplication
	Total int
}

// AnalyticsData carries the report plus pre-marshaled JSON for the charts,
// matching what the previous backend handed to its templates.
type AnalyticsData struct {
	Title            string
	Report           analytics.Report
	StatusCountsJSON template.JS
	TimelineJSON     template.JS
	Theme            Theme
}

type ErrorData struct {
	Title   string
	Message string
}
