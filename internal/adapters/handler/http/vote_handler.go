package http

import (
	"encoding/json"
	"net/http"

	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	UserName   string `json:"userName"`
	VoteDate   string `json:"voteDate"`
	Attendance string `json:"attendance"`
	MinPlayers string `json:"minPlayers"`
	Guests     int    `json:"guests"`
}

// GetVotes godoc
// @Summary      Votes of one Wednesday
// @Description  Returns the raw votes in creation order and the summary grouped by attendance.
// @Tags         votes
// @Produce      json
// @Param        date  query  string  true  "Event date (YYYY-MM-DD)"
// @Success      200
// @Failure      400
// @Router       /votes [get]
func (h *VoteHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.VotesForDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err, "failed to load votes")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SubmitVote godoc
// @Summary      Casts or changes a vote
// @Description  Creates the caller's vote for the date or overwrites the existing one.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400
// @Router       /votes [post]
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vote, err := h.service.Vote(r.Context(), ports.VoteInput{
		UserName:   req.UserName,
		VoteDate:   req.VoteDate,
		Attendance: req.Attendance,
		MinPlayers: req.MinPlayers,
		Guests:     req.Guests,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to save vote")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"vote": vote})
}
