package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/footvote/internal/core/domain"
	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) GetByDate(ctx context.Context, voteDate string) ([]domain.Vote, error) {
	query := `
		SELECT id, user_name, to_char(vote_date, 'YYYY-MM-DD'), attendance, min_players, guests, created_at, updated_at
		FROM votes
		WHERE vote_date = $1
		ORDER BY created_at ASC, seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, voteDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	defer rows.Close()

	votes := []domain.Vote{}
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.UserName, &v.VoteDate, &v.Attendance, &v.MinPlayers, &v.Guests, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
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
		INSERT INTO votes (id, user_name, vote_date, attendance, min_players, guests)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_name, vote_date) DO UPDATE
		SET attendance = EXCLUDED.attendance,
		    min_players = EXCLUDED.min_players,
		    guests = EXCLUDED.guests,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		uuid.New(), vote.UserName, vote.VoteDate, string(vote.Attendance), string(vote.MinPlayers), vote.Guests,
	).Scan(&vote.ID, &vote.CreatedAt, &vote.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}
