package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies every up migration in name order. The migrations only
// use IF NOT EXISTS statements, so it is safe to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	names, err := migrationNames(".up.sql")
	if err != nil {
		return err
	}

	for _, name := range names {
		content, err := fs.ReadFile(migrationFS, "migrations/"+name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}
	}

	return nil
}

// MigrationFile returns the content of the single migration whose file
// name ends with "<name>.sql", e.g. "create_votes_and_comments.down".
func MigrationFile(name string) ([]byte, error) {
	pattern, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(name)))
	if err != nil {
		return nil, fmt.Errorf("invalid migration name: %w", err)
	}

	names, err := migrationNames(".sql")
	if err != nil {
		return nil, err
	}

	for _, n := range names {
		if pattern.MatchString(n) {
			return fs.ReadFile(migrationFS, "migrations/"+n)
		}
	}

	return nil, fmt.Errorf("migration file not found: %s", name)
}

func migrationNames(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}
