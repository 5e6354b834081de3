package web

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/domain"
)

// Theme maps each application status to the hex color used on the dashboard.
type Theme map[string]string

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		domain.StatusApplied:   "#F5D5A8",
		domain.StatusInterview: "#74B9FF",
		domain.StatusOffered:   "#6BCB77",
		domain.StatusDeclined:  "#E87171",
		domain.StatusRejected:  "#B0B0B0",
	}
}

// LoadTheme reads a YAML file of status -> color overrides and merges it over
// the defaults. Keys must be members of the status set.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse theme yaml: %w", err)
	}

	theme := DefaultTheme()
	for status, color := range overrides {
		if !domain.ValidStatus(status) {
			return nil, fmt.Errorf("theme file references unknown status %q", status)
		}
		theme[status] = color
	}
	return theme, nil
}
