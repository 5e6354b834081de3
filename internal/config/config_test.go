package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      string
		expected string
	}{
		{
			name:     "variable set",
			key:      "TEST_GETENV_SET",
			value:    "custom",
			def:      "fallback",
			expected: "custom",
		},
		{
			name:     "variable not set uses default",
			key:      "TEST_GETENV_MISSING",
			def:      "fallback",
			expected: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenv(tt.key, tt.def); got != tt.expected {
				t.Errorf("getenv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		def       bool
		expected  bool
		wantPanic bool
	}{
		{name: "true value", value: "true", def: false, expected: true},
		{name: "false value", value: "false", def: true, expected: false},
		{name: "unset uses default", value: "", def: true, expected: true},
		{name: "invalid panics", value: "not_a_bool", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_MUST_BOOL"
			if tt.value != "" {
				t.Setenv(key, tt.value)
			} else {
				if err := os.Unsetenv(key); err != nil {
					t.Fatalf("failed to unset env var: %v", err)
				}
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("mustBool() should have panicked")
					}
				}()
			}

			if got := mustBool(key, tt.def); !tt.wantPanic && got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		def       time.Duration
		expected  time.Duration
		wantPanic bool
	}{
		{name: "valid duration", value: "30s", expected: 30 * time.Second},
		{name: "unset uses default", value: "", def: 5 * time.Second, expected: 5 * time.Second},
		{name: "invalid panics", value: "not_a_duration", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_MUST_DURATION"
			if tt.value != "" {
				t.Setenv(key, tt.value)
			} else {
				if err := os.Unsetenv(key); err != nil {
					t.Fatalf("failed to unset env var: %v", err)
				}
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("mustDuration() should have panicked")
					}
				}()
			}

			if got := mustDuration(key, tt.def); !tt.wantPanic && got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "single value", input: "*", expected: []string{"*"}},
		{name: "multiple with spaces", input: "https://a.com, https://b.com", expected: []string{"https://a.com", "https://b.com"}},
		{name: "quoted values", input: `"https://a.com", 'https://b.com'`, expected: []string{"https://a.com", "https://b.com"}},
		{name: "empty string", input: "", expected: nil},
		{name: "only separators", input: " , , ", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"TRACKER_LISTEN_PORT", "TRACKER_SHUTDOWN_TIMEOUT", "TRACKER_LOG_LEVEL",
		"TRACKER_PRETTY_LOG", "TRACKER_DB_PATH", "TRACKER_THEME_FILE",
		"TRACKER_ALLOWED_ORIGINS",
	} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset env var: %v", err)
		}
	}

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	if cfg.DBPath != "tracker.db" {
		t.Errorf("DBPath = %q, want tracker.db", cfg.DBPath)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TRACKER_LISTEN_PORT", ":9090")
	t.Setenv("TRACKER_DB_PATH", "/tmp/jobs.db")
	t.Setenv("TRACKER_ALLOWED_ORIGINS", "https://www.linkedin.com")

	cfg := Load()

	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %q, want :9090", cfg.ListenPort)
	}
	if cfg.DBPath != "/tmp/jobs.db" {
		t.Errorf("DBPath = %q, want /tmp/jobs.db", cfg.DBPath)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://www.linkedin.com"}) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}
