package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/domain/task"
)

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass through.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, task.ErrNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_tasks for valid ids"}
	case errors.Is(err, project.ErrNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Call list_projects for valid ids"}
	case errors.Is(err, task.ErrForbidden), errors.Is(err, project.ErrForbidden):
		return &APIError{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, task.ErrInvalidInput), errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "BAD_USER_INPUT", Message: err.Error()}
	default:
		return err
	}
}

func invalidInput(format string, args ...any) error {
	return &APIError{Code: "BAD_USER_INPUT", Message: fmt.Sprintf(format, args...)}
}
