package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert collides with an existing row
	ErrConflict = errors.New("conflict: entity already exists")

	// ErrInvalidInput is returned when a row cannot be encoded or decoded
	ErrInvalidInput = errors.New("invalid input")
)
