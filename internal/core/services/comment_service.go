package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vncsmyrnk/footvote/internal/core/domain"
	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type commentService struct {
	repo ports.CommentRepository
	loc  *time.Location
}

func NewCommentService(repo ports.CommentRepository, loc *time.Location) ports.CommentService {
	return &commentService{
		repo: repo,
		loc:  loc,
	}
}

func (s *commentService) AddComment(ctx context.Context, input ports.AddCommentInput) (*domain.Comment, error) {
	name, err := validateUserName(input.UserName)
	if err != nil {
		return nil, err
	}

	if _, err := validateWednesday("voteDate", input.VoteDate, s.loc); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Comment)
	if text == "" {
		return nil, domain.NewValidationError("comment", "cannot be empty")
	}

	comment := &domain.Comment{
		UserName: name,
		VoteDate: input.VoteDate,
		Comment:  text,
	}

	if err := s.repo.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return comment, nil
}

func (s *commentService) CommentsForDate(ctx context.Context, voteDate string) ([]domain.Comment, error) {
	if _, err := validateDate("date", voteDate, s.loc); err != nil {
		return nil, err
	}

	comments, err := s.repo.GetByDate(ctx, voteDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	return comments, nil
}
