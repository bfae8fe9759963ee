package task

import "errors"

var (
	// ErrNotFound indicates the task doesn't exist.
	ErrNotFound = errors.New("task not found")
	// ErrForbidden indicates the task belongs to another user.
	ErrForbidden = errors.New("you do not have access to this task")
	// ErrInvalidInput indicates invalid task input.
	ErrInvalidInput = errors.New("invalid task input")
)
