package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vncsmyrnk/footvote/internal/core/domain"
	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type voteService struct {
	voteRepo ports.VoteRepository
	loc      *time.Location
}

func NewVoteService(voteRepo ports.VoteRepository, loc *time.Location) ports.VoteService {
	return &voteService{
		voteRepo: voteRepo,
		loc:      loc,
	}
}

func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	name, err := validateUserName(input.UserName)
	if err != nil {
		return nil, err
	}

	if _, err := validateWednesday("voteDate", input.VoteDate, s.loc); err != nil {
		return nil, err
	}

	attendance := domain.Attendance(input.Attendance)
	if !attendance.Valid() {
		return nil, domain.NewValidationError("attendance", fmt.Sprintf("invalid value %q", input.Attendance))
	}

	minPlayers := domain.MinPlayers(input.MinPlayers)
	if !minPlayers.Valid() {
		return nil, domain.NewValidationError("minPlayers", fmt.Sprintf("invalid value %q", input.MinPlayers))
	}

	if input.Guests < 0 || input.Guests > domain.MaxGuests {
		return nil, domain.NewValidationError("guests", fmt.Sprintf("must be between 0 and %d", domain.MaxGuests))
	}

	vote := &domain.Vote{
		UserName:   name,
		VoteDate:   input.VoteDate,
		Attendance: attendance,
		MinPlayers: minPlayers,
		Guests:     input.Guests,
	}

	if err := s.voteRepo.Upsert(ctx, vote); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return vote, nil
}

func (s *voteService) VotesForDate(ctx context.Context, voteDate string) (*ports.DateVotes, error) {
	votes, err := s.fetch(ctx, voteDate)
	if err != nil {
		return nil, err
	}

	summary, err := domain.Summarize(votes)
	if err != nil {
		return nil, err
	}

	return &ports.DateVotes{
		Votes:   votes,
		Summary: summary,
	}, nil
}

func (s *voteService) Summary(ctx context.Context, voteDate string) (domain.VoteSummary, error) {
	votes, err := s.fetch(ctx, voteDate)
	if err != nil {
		return nil, err
	}

	return domain.Summarize(votes)
}

func (s *voteService) fetch(ctx context.Context, voteDate string) ([]domain.Vote, error) {
	if _, err := validateDate("date", voteDate, s.loc); err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.GetByDate(ctx, voteDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if votes == nil {
		votes = []domain.Vote{}
	}

	return votes, nil
}
