package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/footvote/internal/core/domain"
	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) ports.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) GetByDate(ctx context.Context, voteDate string) ([]domain.Comment, error) {
	query := `
		SELECT id, user_name, to_char(vote_date, 'YYYY-MM-DD'), comment, created_at
		FROM comments
		WHERE vote_date = $1
		ORDER BY created_at ASC, seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, voteDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.UserName, &c.VoteDate, &c.Comment, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, user_name, vote_date, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	id := uuid.New()
	err := r.db.QueryRowContext(ctx, query, id, comment.UserName, comment.VoteDate, comment.Comment).Scan(&comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	comment.ID = id
	return nil
}
