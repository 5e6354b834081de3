package domain

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func TestApplyPartialUpdate(t *testing.T) {
	applied := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	base := JobApplication{
		ID:          7,
		JobTitle:    "Backend Engineer",
		Company:     strptr("Acme"),
		Description: strptr("Go services"),
		Status:      StatusApplied,
		AppliedDate: &applied,
		URL:         strptr("https://example.com/jobs/7"),
	}

	tests := []struct {
		name  string
		patch Patch
		check func(t *testing.T, got JobApplication)
	}{
		{
			name:  "status only leaves other fields untouched",
			patch: Patch{Status: strptr(StatusInterview)},
			check: func(t *testing.T, got JobApplication) {
				if got.Status != StatusInterview {
					t.Errorf("Status = %q, want %q", got.Status, StatusInterview)
				}
				if got.JobTitle != base.JobTitle {
					t.Errorf("JobTitle changed: %q", got.JobTitle)
				}
				if got.Company == nil || *got.Company != "Acme" {
					t.Errorf("Company changed: %v", got.Company)
				}
				if got.Description == nil || *got.Description != "Go services" {
					t.Errorf("Description changed: %v", got.Description)
				}
				if got.URL == nil || *got.URL != "https://example.com/jobs/7" {
					t.Errorf("URL changed: %v", got.URL)
				}
			},
		},
		{
			name:  "empty patch is a no-op",
			patch: Patch{},
			check: func(t *testing.T, got JobApplication) {
				if got.JobTitle != base.JobTitle || got.Status != base.Status {
					t.Errorf("empty patch mutated record: %+v", got)
				}
			},
		},
		{
			name:  "title and url together",
			patch: Patch{JobTitle: strptr("Staff Engineer"), URL: strptr("https://example.com/x")},
			check: func(t *testing.T, got JobApplication) {
				if got.JobTitle != "Staff Engineer" {
					t.Errorf("JobTitle = %q", got.JobTitle)
				}
				if got.URL == nil || *got.URL != "https://example.com/x" {
					t.Errorf("URL = %v", got.URL)
				}
				if got.Status != StatusApplied {
					t.Errorf("Status changed: %q", got.Status)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(base, tt.patch)
			tt.check(t, got)

			// Input must never be mutated.
			if base.Status != StatusApplied || base.JobTitle != "Backend Engineer" {
				t.Fatalf("Apply() mutated its input: %+v", base)
			}
		})
	}
}

func TestApplyDoesNotTouchIDOrAppliedDate(t *testing.T) {
	applied := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	base := JobApplication{ID: 3, JobTitle: "SRE", Status: StatusApplied, AppliedDate: &applied}

	got := Apply(base, Patch{Status: strptr(StatusOffered)})
	if got.ID != 3 {
		t.Errorf("ID = %d, want 3", got.ID)
	}
	if got.AppliedDate == nil || !got.AppliedDate.Equal(applied) {
		t.Errorf("AppliedDate = %v, want %v", got.AppliedDate, applied)
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusApplied, true},
		{StatusInterview, true},
		{StatusOffered, true},
		{StatusDeclined, true},
		{StatusRejected, true},
		{"applied", false},
		{"Ghosted", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := ValidStatus(tt.status); got != tt.want {
				t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
