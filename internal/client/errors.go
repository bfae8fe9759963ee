package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the entity belongs to another user.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated indicates a missing or rejected credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidInput indicates the server rejected the payload.
	ErrInvalidInput = errors.New("invalid input")
)

// Error is an error returned by the API.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap maps the error code to a package sentinel.
func (e *Error) Unwrap() error {
	switch e.Code {
	case "NOT_FOUND":
		return ErrNotFound
	case "FORBIDDEN":
		return ErrForbidden
	case "UNAUTHENTICATED":
		return ErrUnauthenticated
	case "BAD_USER_INPUT":
		return ErrInvalidInput
	}
	return nil
}
