package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DBPath    string // path to the SQLite database file
	ThemeFile string // optional YAML file overriding status colors (empty = defaults)

	AllowedOrigins []string // CORS origins for the browser extension ("*" = any)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("TRACKER_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("TRACKER_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("TRACKER_LOG_LEVEL", "info"),
		PrettyLog: mustBool("TRACKER_PRETTY_LOG", true),

		// Storage
		DBPath:    getenv("TRACKER_DB_PATH", "tracker.db"),
		ThemeFile: getenv("TRACKER_THEME_FILE", ""),

		// The extension posts from arbitrary job-board pages, so the default
		// mirrors the previous backend and allows everything.
		AllowedOrigins: splitAndTrim(getenv("TRACKER_ALLOWED_ORIGINS", "*")),
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Environment variable %s must be a boolean, got %q", key, v))
	}
	return b
}

func mustDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Environment variable %s must be a duration, got %q", key, v))
	}
	return d
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
