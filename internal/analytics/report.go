// Package analytics derives aggregate statistics and heuristic insights from
// the full set of job applications. It is a full recompute on every call;
// that is fine for a single user's application history.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/domain"
)

// ghostedAfterDays is how many whole days an application may sit in "Applied"
// before it counts as ghosted. Partial days are truncated, so a record becomes
// ghosted only once 15 full days have elapsed.
const ghostedAfterDays = 14

// DayCount is one bucket of the per-day application timeline.
type DayCount struct {
	Date  string `json:"date"` // ISO day, YYYY-MM-DD
	Count int    `json:"count"`
}

// Report is the analytics output consumed by the analytics page.
type Report struct {
	TotalApplied    int            `json:"total_applied"`
	StatusCounts    map[string]int `json:"status_counts"`
	ResponseRate    float64        `json:"response_rate"`
	ActiveProcesses int            `json:"active_processes"`
	Timeline        []DayCount     `json:"timeline_counts"`
	Insights        []Insight      `json:"insights"`
}

// Compute builds a Report from the complete record set. It never fails:
// records with no usable applied date are simply excluded from the
// date-dependent aggregates.
func Compute(jobs []domain.JobApplication, now time.Time) Report {
	r := Report{
		TotalApplied: len(jobs),
		StatusCounts: make(map[string]int),
	}

	byDay := make(map[string]int)
	for _, job := range jobs {
		// Every record contributes a status key, even a blank one, so the
		// counts always sum to the total.
		r.StatusCounts[job.Status]++
		if job.AppliedDate != nil {
			byDay[job.AppliedDate.UTC().Format("2006-01-02")]++
		}
	}

	// Responses = interviews + offers, both as a rate and an absolute count.
	responses := r.StatusCounts[domain.StatusInterview] + r.StatusCounts[domain.StatusOffered]
	r.ActiveProcesses = responses
	if r.TotalApplied > 0 {
		r.ResponseRate = round1(float64(responses) / float64(r.TotalApplied) * 100)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	r.Timeline = make([]DayCount, 0, len(days))
	for _, day := range days {
		r.Timeline = append(r.Timeline, DayCount{Date: day, Count: byDay[day]})
	}

	r.Insights = buildInsights(jobs, r, now)
	return r
}

// ghostedCount counts applications still in "Applied" with no movement for
// more than two weeks. Timestamps without an offset were already given UTC at
// the store boundary, so the subtraction here never mixes naive and aware
// values.
func ghostedCount(jobs []domain.JobApplication, now time.Time) int {
	n := 0
	for _, job := range jobs {
		if job.Status != domain.StatusApplied || job.AppliedDate == nil {
			continue
		}
		age := now.UTC().Sub(job.AppliedDate.UTC())
		if int(age.Hours()/24) > ghostedAfterDays {
			n++
		}
	}
	return n
}

// round1 rounds to one decimal with ties going to the even digit, so 6.25
// becomes 6.2 rather than 6.3.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
