package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/footvote/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps a service error to a response. Validation errors
// go back verbatim; anything else is logged and hidden behind message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	entry := logrus.WithField("path", r.URL.Path)
	if errors.Is(err, domain.ErrInvalidAttendance) {
		entry.Errorf("Data integrity error: %v", err)
	} else {
		entry.Errorf("%s: %v", message, err)
	}
	writeError(w, http.StatusInternalServerError, message)
}
