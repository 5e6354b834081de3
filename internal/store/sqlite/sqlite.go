// Package sqlite persists job applications in a single SQLite table.
package sqlite

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) the SQLite database at path and enables foreign
// keys. Use ":memory:" for an isolated throwaway instance in tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time, and a pooled ":memory:" handle
	// would otherwise open a fresh empty database per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
