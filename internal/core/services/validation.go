package services

import (
	"strings"
	"time"

	"github.com/vncsmyrnk/footvote/internal/calendar"
	"github.com/vncsmyrnk/footvote/internal/core/domain"
)

func validateUserName(userName string) (string, error) {
	name := strings.TrimSpace(userName)
	if name == "" {
		return "", domain.NewValidationError("userName", "is required")
	}
	if len([]rune(name)) > domain.MaxUserNameLen {
		return "", domain.NewValidationError("userName", "is too long")
	}
	return name, nil
}

func validateDate(field, value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, domain.NewValidationError(field, "is required")
	}
	d, err := calendar.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, err.Error())
	}
	return d, nil
}

// validateWednesday is validateDate for write paths and window paging:
// the game is only played on Wednesdays.
func validateWednesday(field, value string, loc *time.Location) (time.Time, error) {
	d, err := validateDate(field, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	if !calendar.IsWednesday(d) {
		return time.Time{}, domain.NewValidationError(field, "must be a Wednesday")
	}
	return d, nil
}
