package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/footvote/internal/core/domain"
)

var errStoreDown = errors.New("connection refused")

type memoryVoteRepository struct {
	mu    sync.Mutex
	votes []domain.Vote
	err   error
	clock func() time.Time
}

func newMemoryVoteRepository(clock func() time.Time) *memoryVoteRepository {
	return &memoryVoteRepository{clock: clock}
}

func (r *memoryVoteRepository) GetByDate(_ context.Context, voteDate string) ([]domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	var out []domain.Vote
	for _, v := range r.votes {
		if v.VoteDate == voteDate {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memoryVoteRepository) Upsert(_ context.Context, vote *domain.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}

	now := r.clock()
	for i, v := range r.votes {
		if v.UserName == vote.UserName && v.VoteDate == vote.VoteDate {
			v.Attendance = vote.Attendance
			v.MinPlayers = vote.MinPlayers
			v.Guests = vote.Guests
			v.UpdatedAt = now
			r.votes[i] = v
			*vote = v
			return nil
		}
	}

	vote.ID = uuid.New()
	vote.CreatedAt = now
	vote.UpdatedAt = now
	r.votes = append(r.votes, *vote)
	return nil
}

type memoryCommentRepository struct {
	mu       sync.Mutex
	comments []domain.Comment
	err      error
}

func (r *memoryCommentRepository) GetByDate(_ context.Context, voteDate string) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	var out []domain.Comment
	for _, c := range r.comments {
		if c.VoteDate == voteDate {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCommentRepository) Save(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}

	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	r.comments = append(r.comments, *comment)
	return nil
}

// tickingClock advances one second on every call.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}
