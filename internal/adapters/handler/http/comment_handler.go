package http

import (
	"encoding/json"
	"net/http"

	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{
		service: service,
	}
}

type commentRequest struct {
	UserName string `json:"userName"`
	VoteDate string `json:"voteDate"`
	Comment  string `json:"comment"`
}

func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.CommentsForDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err, "failed to load comments")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.service.AddComment(r.Context(), ports.AddCommentInput{
		UserName: req.UserName,
		VoteDate: req.VoteDate,
		Comment:  req.Comment,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to save comment")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"comment": comment})
}
