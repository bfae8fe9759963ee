package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/repository"
	"github.com/stretchr/testify/require"
)

func newProject(id, userID, name string, createdAt time.Time) *project.Project {
	icon := "📁"
	return &project.Project{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Color:     "#3B82F6",
		Icon:      &icon,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestProjectRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := newProject("p1", "user1", "Personal", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, proj))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Personal", retrieved.Name)
	require.Equal(t, "user1", retrieved.UserID)
	require.Equal(t, "#3B82F6", retrieved.Color)
	require.NotNil(t, retrieved.Icon)
	require.Equal(t, "📁", *retrieved.Icon)
	require.WithinDuration(t, proj.CreatedAt, retrieved.CreatedAt, time.Millisecond)

	_, err = repo.Get(ctx, "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestProjectRepository_NullIcon(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := newProject("p1", "user1", "Plain", time.Now().UTC())
	proj.Icon = nil
	require.NoError(t, repo.Create(ctx, proj))

	retrieved, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Nil(t, retrieved.Icon)
}

func TestProjectRepository_ListByUserOrderAndIsolation(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newProject("p2", "user1", "Second", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newProject("p1", "user1", "First", base)))
	require.NoError(t, repo.Create(ctx, newProject("p3", "user2", "Other", base)))

	projects, err := repo.ListByUser(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "First", projects[0].Name)
	require.Equal(t, "Second", projects[1].Name)

	none, err := repo.ListByUser(ctx, "user3")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestProjectRepository_DeleteLeavesTasks(t *testing.T) {
	db := NewTestDB(t)
	projects := NewProjectRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	require.NoError(t, projects.Create(ctx, newProject("p1", "user1", "Work", time.Now().UTC())))
	require.NoError(t, tasks.Create(ctx, newTask("t1", "user1", "p1", "Orphan soon")))

	require.NoError(t, projects.Delete(ctx, "p1"))
	require.Equal(t, repository.ErrNotFound, projects.Delete(ctx, "p1"))

	orphan, err := tasks.Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, "p1", orphan.ProjectID)
}
