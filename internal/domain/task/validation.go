package task

import (
	"fmt"
	"strings"
)

// ValidateCreateInput validates fields required to create a task.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ProjectID) == "" {
		return fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, req.Priority)
	}
	return nil
}

// ValidateUpdateInput validates the fields present in a partial update.
func ValidateUpdateInput(req UpdateRequest) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return fmt.Errorf("%w: title cannot be blank", ErrInvalidInput)
	}
	if req.ProjectID != nil && strings.TrimSpace(*req.ProjectID) == "" {
		return fmt.Errorf("%w: project id cannot be blank", ErrInvalidInput)
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *req.Priority)
	}
	return nil
}
