package services

import (
	"errors"
	"fmt"

	"github.com/Sneha051188/employee-management-system/internal/stores"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
)

// Error carries a client-facing message and unwraps to one of the sentinels above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(resource string, id uint) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s not found with id: %d", resource, id)}
}

func conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

func invalidInput(message string) error {
	return &Error{Kind: ErrInvalidInput, Message: message}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, stores.ErrNotFound)
}
