package domain

import "time"

// Application statuses. Every write path sets one of these five values;
// the storage layer does not enforce membership.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffered   = "Offered"
	StatusDeclined  = "Declined"
	StatusRejected  = "Rejected"
)

// Statuses is the fixed display order used by the kanban dashboard.
var Statuses = []string{
	StatusApplied,
	StatusInterview,
	StatusOffered,
	StatusDeclined,
	StatusRejected,
}

// ValidStatus reports whether s is a member of the status set.
func ValidStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// JobApplication is the sole persisted entity: one row per job applied to.
// AppliedDate is set once at creation and normalized to UTC at the store
// boundary; it is nil only for legacy rows with an unreadable date.
type JobApplication struct {
	ID          int64      `json:"id"`
	JobTitle    string     `json:"job_title"`
	Company     *string    `json:"company"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	AppliedDate *time.Time `json:"applied_date"`
	URL         *string    `json:"url"`
}
