package graph

import (
	"errors"
	"log/slog"

	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/rpggio/busybee/internal/transport"
)

// ErrUnauthenticated is returned when a resolver runs without an identity.
var ErrUnauthenticated = errors.New("unauthenticated")

// Error is a GraphQL error carrying extensions.code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions implements gqlerrors.ExtendedError.
func (e *Error) Extensions() map[string]any {
	return map[string]any{"code": e.Code}
}

// MapError maps domain errors to GraphQL errors. Unrecognized errors are logged
// and reported as INTERNAL without their cause.
func MapError(err error, logger *slog.Logger) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrNotFound), errors.Is(err, task.ErrNotFound):
		return &Error{Code: transport.CodeNotFound, Message: err.Error()}
	case errors.Is(err, project.ErrForbidden), errors.Is(err, task.ErrForbidden):
		return &Error{Code: transport.CodeForbidden, Message: err.Error()}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, task.ErrInvalidInput):
		return &Error{Code: transport.CodeBadUserInput, Message: err.Error()}
	case errors.Is(err, ErrUnauthenticated):
		return &Error{Code: transport.CodeUnauthenticated, Message: err.Error()}
	default:
		if logger != nil {
			logger.Error("resolver failed", "error", err)
		}
		return &Error{Code: transport.CodeInternal, Message: "internal server error"}
	}
}
