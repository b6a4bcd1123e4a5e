package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	VoteDate  string    `json:"vote_date"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
