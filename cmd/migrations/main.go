package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/footvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/footvote/internal/config"
)

// Usage: migrations <name> [flags], e.g. "migrations create_votes_and_comments.down".
func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("a migration name is required.")
	}
	migrationName := os.Args[1]

	cfg, err := config.Load("migrations", append([]string{"-db-driver", config.DriverPostgres}, os.Args[2:]...))
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	cfg.ConfigureLogger()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal(err)
	}
	defer db.Close()

	fileContent, err := postgres.MigrationFile(migrationName)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := db.ExecContext(ctx, string(fileContent)); err != nil {
		logrus.Fatalf("Failed to execute SQL file: %v", err)
	}

	logrus.WithField("migration", migrationName).Info("Migration file executed successfully.")
}
