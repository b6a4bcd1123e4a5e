package ports

import (
	"context"

	"github.com/vncsmyrnk/footvote/internal/core/domain"
)

type CommentRepository interface {
	GetByDate(ctx context.Context, voteDate string) ([]domain.Comment, error)
	Save(ctx context.Context, comment *domain.Comment) error
}

type AddCommentInput struct {
	UserName string
	VoteDate string
	Comment  string
}

type CommentService interface {
	AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error)
	CommentsForDate(ctx context.Context, voteDate string) ([]domain.Comment, error)
}
