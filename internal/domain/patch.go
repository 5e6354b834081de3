package domain

// Patch describes a partial update to a JobApplication. A nil field means
// "leave untouched"; ID and AppliedDate are deliberately absent since neither
// is mutable after creation.
type Patch struct {
	JobTitle    *string `json:"job_title"`
	Company     *string `json:"company"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	URL         *string `json:"url"`
}

// Empty reports whether the patch carries no fields at all.
func (p Patch) Empty() bool {
	return p.JobTitle == nil && p.Company == nil && p.Description == nil &&
		p.Status == nil && p.URL == nil
}

// Apply returns a copy of job with the patch's present fields applied.
// The input record is never mutated.
func Apply(job JobApplication, p Patch) JobApplication {
	out := job
	if p.JobTitle != nil {
		out.JobTitle = *p.JobTitle
	}
	if p.Company != nil {
		out.Company = p.Company
	}
	if p.Description != nil {
		out.Description = p.Description
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.URL != nil {
		out.URL = p.URL
	}
	return out
}
