package project

import "errors"

var (
	// ErrNotFound indicates the project doesn't exist.
	ErrNotFound = errors.New("project not found")
	// ErrForbidden indicates the project belongs to another user.
	ErrForbidden = errors.New("you do not have access to this project")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
)
