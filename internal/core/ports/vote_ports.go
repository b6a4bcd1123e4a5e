package ports

import (
	"context"

	"github.com/vncsmyrnk/footvote/internal/core/domain"
)

type VoteRepository interface {
	// GetByDate returns the votes of a date in creation order.
	GetByDate(ctx context.Context, voteDate string) ([]domain.Vote, error)
	// Upsert inserts the vote or, when (UserName, VoteDate) already exists,
	// overwrites attendance, min players and guests in one atomic statement.
	// ID, CreatedAt and UpdatedAt are set from the stored row.
	Upsert(ctx context.Context, vote *domain.Vote) error
}

type VoteInput struct {
	UserName   string
	VoteDate   string
	Attendance string
	MinPlayers string
	Guests     int
}

type DateVotes struct {
	Votes   []domain.Vote      `json:"votes"`
	Summary domain.VoteSummary `json:"summary"`
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Vote, error)
	VotesForDate(ctx context.Context, voteDate string) (*DateVotes, error)
	Summary(ctx context.Context, voteDate string) (domain.VoteSummary, error)
}
