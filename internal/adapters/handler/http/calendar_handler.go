package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vncsmyrnk/footvote/internal/calendar"
	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type CalendarHandler struct {
	service     ports.CalendarService
	windowSize  int
	extendCount int
}

func NewCalendarHandler(service ports.CalendarService, windowSize, extendCount int) *CalendarHandler {
	return &CalendarHandler{
		service:     service,
		windowSize:  windowSize,
		extendCount: extendCount,
	}
}

func (h *CalendarHandler) GetWindow(w http.ResponseWriter, r *http.Request) {
	count, ok := h.count(w, r, h.windowSize)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Window(count))
}

func (h *CalendarHandler) GetPast(w http.ResponseWriter, r *http.Request) {
	count, ok := h.count(w, r, h.extendCount)
	if !ok {
		return
	}

	dates, err := h.service.ExtendPast(r.URL.Query().Get("from"), count)
	if err != nil {
		writeServiceError(w, r, err, "failed to extend window")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"dates": dates})
}

func (h *CalendarHandler) GetFuture(w http.ResponseWriter, r *http.Request) {
	count, ok := h.count(w, r, h.extendCount)
	if !ok {
		return
	}

	dates, err := h.service.ExtendFuture(r.URL.Query().Get("from"), count)
	if err != nil {
		writeServiceError(w, r, err, "failed to extend window")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"dates": dates})
}

func (h *CalendarHandler) count(w http.ResponseWriter, r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return fallback, true
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 || count > calendar.MaxDates {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("count must be between 0 and %d", calendar.MaxDates))
		return 0, false
	}
	return count, true
}
