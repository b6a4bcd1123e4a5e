// Package sqlite stores votes and comments in a single SQLite file, for
// deployments that do not run Postgres.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout sorts lexically in chronological order, which the
// ORDER BY created_at queries rely on.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Open opens (creating if needed) the database file at path.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	return db, nil
}

// CreateSchema creates all tables. Safe to call multiple times.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    user_name TEXT NOT NULL CHECK (length(user_name) <= 100),
    vote_date TEXT NOT NULL,
    attendance TEXT NOT NULL CHECK (attendance IN ('yes', 'no')),
    min_players TEXT NOT NULL CHECK (min_players IN ('any', '6', '8')),
    guests INTEGER NOT NULL DEFAULT 0 CHECK (guests >= 0 AND guests <= 10),
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    UNIQUE (user_name, vote_date)
);

CREATE INDEX IF NOT EXISTS idx_votes_date ON votes (vote_date);

CREATE TABLE IF NOT EXISTS comments (
    id TEXT PRIMARY KEY,
    user_name TEXT NOT NULL,
    vote_date TEXT NOT NULL,
    comment TEXT NOT NULL CHECK (length(trim(comment)) > 0),
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comments_date ON comments (vote_date);
`

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", s, err)
	}
	return t, nil
}
