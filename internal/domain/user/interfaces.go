package user

import "context"

// Repository provides persistence for users.
type Repository interface {
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
}
