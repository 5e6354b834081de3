package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when the referenced application id does not exist.
var ErrNotFound = errors.New("job application not found")

// Store wraps the database handle. Construct one per process (or per test)
// and pass it down explicitly; there is no package-level state.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store { return &Store{db: db} }

// Ping verifies the database handle is still usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate creates the schema. Idempotent; called once on startup.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS job_applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	job_title TEXT NOT NULL,
	company TEXT,
	description TEXT,
	status TEXT NOT NULL DEFAULT 'Applied',
	applied_date TEXT,
	url TEXT
);
`)
	return err
}

// Timestamp formats accepted on read. New rows are always written as RFC3339
// UTC; the naive forms cover rows imported from the previous schema.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp normalizes a stored timestamp to UTC. Values without an
// explicit offset are treated as already UTC (attached, not converted).
// Unreadable values come back nil so one bad row never aborts a scan.
func parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range timestampFormats {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
