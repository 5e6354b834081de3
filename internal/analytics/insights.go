package analytics

import (
	"fmt"
	"time"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/domain"
)

// Insight is one heuristic suggestion shown on the analytics page.
type Insight struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// buildInsights runs the fixed rule chain in declaration order. Rules are
// independent unless noted, so several can fire on the same data set; the
// empty-tracker rule short-circuits everything else.
func buildInsights(jobs []domain.JobApplication, r Report, now time.Time) []Insight {
	if r.TotalApplied == 0 {
		return []Insight{{
			Icon:  "🚀",
			Title: "Start your journey",
			Text:  "You haven't tracked any applications yet. Add your first one and watch your progress build up.",
		}}
	}

	var insights []Insight

	if r.TotalApplied < 5 {
		insights = append(insights, Insight{
			Icon:  "📊",
			Title: "Keep applying",
			Text:  "With fewer than 5 applications tracked, the numbers below don't mean much yet. Apply to more jobs for better data.",
		})
	}

	if r.ResponseRate < 10 && r.TotalApplied > 10 {
		insights = append(insights, Insight{
			Icon:  "📝",
			Title: "Review your materials",
			Text:  "Your response rate is under 10%. It may be worth reviewing your resume and cover letter before the next batch.",
		})
	} else if r.ResponseRate > 20 {
		insights = append(insights, Insight{
			Icon:  "🎉",
			Title: "Strong response rate",
			Text:  "More than 1 in 5 of your applications got a response. Whatever you're doing, keep doing it.",
		})
	}

	if r.StatusCounts[domain.StatusInterview] > 3 && r.StatusCounts[domain.StatusOffered] == 0 {
		insights = append(insights, Insight{
			Icon:  "🎯",
			Title: "Sharpen your interviews",
			Text:  "You're landing interviews but no offers yet. Some focused interview prep could help close the gap.",
		})
	}

	if ghosted := ghostedCount(jobs, now); ghosted > 0 {
		insights = append(insights, Insight{
			Icon:  "👻",
			Title: "Time to follow up",
			Text:  fmt.Sprintf("%d of your applications have been silent for over two weeks. A short follow-up message can revive them.", ghosted),
		})
	}

	return insights
}
