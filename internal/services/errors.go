package services

import "github.com/waibhq/waib/internal/session"

// ValidationError is a user-input failure. It maps 1:1 onto a flash message
// and is never logged as a system error.
type ValidationError struct {
	Level   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) *ValidationError {
	return &ValidationError{Level: session.FlashDanger, Message: msg}
}

func warn(msg string) *ValidationError {
	return &ValidationError{Level: session.FlashWarning, Message: msg}
}
