package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/footvote/internal/core/domain"
	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type voteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *voteRepository) GetByDate(ctx context.Context, voteDate string) ([]domain.Vote, error) {
	query := `
		SELECT id, user_name, vote_date, attendance, min_players, guests, created_at, updated_at
		FROM votes
		WHERE vote_date = ?
		ORDER BY created_at ASC, rowid ASC
	`
	rows, err := r.db.QueryContext(ctx, query, voteDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	defer rows.Close()

	votes := []domain.Vote{}
	for rows.Next() {
		var (
			v                    domain.Vote
			createdAt, updatedAt string
		)
		if err := rows.Scan(&v.ID, &v.UserName, &v.VoteDate, &v.Attendance, &v.MinPlayers, &v.Guests, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if v.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if v.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}

	return votes, nil
}

func (r *voteRepository) Upsert(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, user_name, vote_date, attendance, min_players, guests, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_name, vote_date) DO UPDATE
		SET attendance = excluded.attendance,
		    min_players = excluded.min_players,
		    guests = excluded.guests,
		    updated_at = excluded.updated_at
		RETURNING id, created_at, updated_at
	`
	now := formatTime(r.now())

	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), vote.UserName, vote.VoteDate, string(vote.Attendance), string(vote.MinPlayers), vote.Guests, now, now,
	).Scan(&vote.ID, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}

	if vote.CreatedAt, err = parseTime(createdAt); err != nil {
		return err
	}
	if vote.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return err
	}
	return nil
}
