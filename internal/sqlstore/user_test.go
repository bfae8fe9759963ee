package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/busybee/internal/domain/user"
	"github.com/rpggio/busybee/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateGetUpdate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	u := &user.User{ID: "uid1", Email: user.DefaultEmail, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.Get(ctx, "uid1")
	require.NoError(t, err)
	require.Equal(t, user.DefaultEmail, got.Email)
	require.Nil(t, got.Name)

	name := "Ada"
	got.Email = "ada@example.com"
	got.Name = &name
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.Get(ctx, "uid1")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", got.Email)
	require.Equal(t, "Ada", *got.Name)
}

func TestUserRepository_DuplicateIsConflict(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{ID: "uid1", Email: "a@example.com", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, u))
	require.ErrorIs(t, repo.Create(ctx, u), repository.ErrConflict)
}

func TestUserRepository_Missing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "nobody")
	require.Equal(t, repository.ErrNotFound, err)

	err = repo.Update(ctx, &user.User{ID: "nobody", Email: "x@example.com", UpdatedAt: time.Now()})
	require.Equal(t, repository.ErrNotFound, err)
}
