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

type commentRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewCommentRepository(db *sql.DB) ports.CommentRepository {
	return &commentRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *commentRepository) GetByDate(ctx context.Context, voteDate string) ([]domain.Comment, error) {
	query := `
		SELECT id, user_name, vote_date, comment, created_at
		FROM comments
		WHERE vote_date = ?
		ORDER BY created_at ASC, rowid ASC
	`
	rows, err := r.db.QueryContext(ctx, query, voteDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var (
			c         domain.Comment
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.UserName, &c.VoteDate, &c.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
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
		INSERT INTO comments (id, user_name, vote_date, comment, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	id := uuid.New()
	createdAt := r.now().UTC().Round(0)

	_, err := r.db.ExecContext(ctx, query, id.String(), comment.UserName, comment.VoteDate, comment.Comment, formatTime(createdAt))
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = createdAt
	return nil
}
