// Package repository opens the store selected by configuration.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/footvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/footvote/internal/adapters/repository/sqlite"
	"github.com/vncsmyrnk/footvote/internal/config"
	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type Repositories struct {
	Votes    ports.VoteRepository
	Comments ports.CommentRepository

	db *sql.DB
}

// Open connects to the configured database and makes sure its schema
// exists. It is meant to be called once at startup.
func Open(ctx context.Context, cfg config.Config) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to reach postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		logrus.Info("Postgres schema ready")

		return &Repositories{
			Votes:    postgres.NewVoteRepository(db),
			Comments: postgres.NewCommentRepository(db),
			db:       db,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.CreateSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		logrus.WithField("path", cfg.SQLitePath).Info("SQLite schema ready")

		return &Repositories{
			Votes:    sqlite.NewVoteRepository(db),
			Comments: sqlite.NewCommentRepository(db),
			db:       db,
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func (r *Repositories) Close() error {
	return r.db.Close()
}
