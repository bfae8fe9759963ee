package task

import (
	"context"

	"github.com/rpggio/busybee/internal/domain/user"
)

// Repository provides persistence for tasks.
type Repository interface {
	Create(ctx context.Context, t *Task) error
	Get(ctx context.Context, id string) (*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
	// ListByUser returns incomplete tasks first, then by due date (nulls last),
	// then by priority rank descending.
	ListByUser(ctx context.Context, userID string) ([]Task, error)
	SearchByTitle(ctx context.Context, userID, query string) ([]Task, error)
}

// UserEnsurer makes sure the owner of a new task has a user row.
type UserEnsurer interface {
	Ensure(ctx context.Context, p user.Profile) error
}
