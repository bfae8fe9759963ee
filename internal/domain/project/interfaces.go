package project

import (
	"context"

	"github.com/rpggio/busybee/internal/domain/user"
)

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	ListByUser(ctx context.Context, userID string) ([]Project, error)
	Delete(ctx context.Context, id string) error
}

// UserEnsurer makes sure the owner of a new project has a user row.
type UserEnsurer interface {
	Ensure(ctx context.Context, p user.Profile) error
}
