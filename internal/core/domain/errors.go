package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAttendance marks a stored vote whose attendance is outside
	// Attendances. Validation on write should make it unreachable.
	ErrInvalidAttendance = errors.New("invalid attendance value")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// ValidationError is a rejected input. Its message is safe to show to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
