package user

import "errors"

// ErrInvalidInput indicates a profile without a subject ID.
var ErrInvalidInput = errors.New("invalid user input")
