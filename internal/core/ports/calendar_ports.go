package ports

import "github.com/vncsmyrnk/footvote/internal/core/domain"

type CalendarService interface {
	// Anchor is the current or next Wednesday.
	Anchor() string
	Window(count int) domain.CalendarWindow
	ExtendPast(from string, count int) ([]domain.EventDay, error)
	ExtendFuture(from string, count int) ([]domain.EventDay, error)
	IsPastDate(date string) (bool, error)
	IsTodayDate(date string) (bool, error)
}
