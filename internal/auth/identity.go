// Package auth verifies bearer credentials and carries the resulting identity
// through request contexts.
package auth

import (
	"context"
	"errors"

	"github.com/rpggio/busybee/internal/domain/user"
)

// ErrInvalidToken is returned by verifiers for any credential they reject.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified subject behind a bearer credential.
type Identity struct {
	UID   string
	Email *string
	Name  *string
}

// Profile converts the identity into the shape used by user upserts.
func (i Identity) Profile() user.Profile {
	return user.Profile{ID: i.UID, Email: i.Email, Name: i.Name}
}

// Verifier validates a bearer credential.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// VerifierFunc adapts a function to Verifier.
type VerifierFunc func(ctx context.Context, token string) (Identity, error)

// Verify calls f.
func (f VerifierFunc) Verify(ctx context.Context, token string) (Identity, error) {
	return f(ctx, token)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity attached by the access guard, if present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UID == "" {
		return Identity{}, false
	}
	return id, true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
