package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/rpggio/busybee/internal/domain/user"
	"github.com/rpggio/busybee/internal/repository"
	"github.com/rpggio/busybee/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedTask() *task.Task {
	desc := "quarterly numbers"
	due := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	return &task.Task{
		ID:          "t1",
		Title:       "Prepare report",
		Description: &desc,
		Priority:    task.PriorityMedium,
		DueDate:     &due,
		Tags:        []string{"work", "work"},
		Completed:   false,
		ProjectID:   "p1",
		UserID:      "owner",
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestTaskService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	owner := user.Profile{ID: "owner"}

	repo := &mocks.TaskRepository{}
	users := &mocks.UserEnsurer{}
	users.On("Ensure", ctx, owner).Return(nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := task.NewService(repo, users, nil)

	high, err := svc.Create(ctx, owner, task.CreateRequest{Title: "Ship release", Priority: task.PriorityHigh, ProjectID: "p1"})
	require.NoError(t, err)
	require.NotNil(t, high.Tags)
	require.Empty(t, high.Tags)
	require.False(t, high.Completed)
	require.Equal(t, "owner", high.UserID)

	low, err := svc.Create(ctx, owner, task.CreateRequest{Title: "Water plants", ProjectID: "p1"})
	require.NoError(t, err)
	require.Equal(t, task.PriorityLow, low.Priority)
	users.AssertNumberOfCalls(t, "Ensure", 2)
}

func TestTaskService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := task.NewService(&mocks.TaskRepository{}, &mocks.UserEnsurer{}, nil)

	cases := []task.CreateRequest{
		{Title: " ", ProjectID: "p1"},
		{Title: "Title", ProjectID: ""},
		{Title: "Title", ProjectID: "p1", Priority: "URGENT"},
	}
	for _, req := range cases {
		_, err := svc.Create(ctx, user.Profile{ID: "owner"}, req)
		require.ErrorIs(t, err, task.ErrInvalidInput)
	}
}

func TestTaskService_GetNotFoundBeforeForbidden(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("Get", ctx, "t1").Return(storedTask(), nil)
	repo.On("Get", ctx, "nope").Return((*task.Task)(nil), repository.ErrNotFound)

	svc := task.NewService(repo, &mocks.UserEnsurer{}, nil)

	_, err := svc.Get(ctx, "nope", "intruder")
	require.ErrorIs(t, err, task.ErrNotFound)

	_, err = svc.Get(ctx, "t1", "intruder")
	require.ErrorIs(t, err, task.ErrForbidden)

	got, err := svc.Get(ctx, "t1", "owner")
	require.NoError(t, err)
	require.Equal(t, "Prepare report", got.Title)
}

func TestTaskService_ForeignOwnerCannotMutate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("Get", ctx, "t1").Return(storedTask(), nil)

	svc := task.NewService(repo, &mocks.UserEnsurer{}, nil)

	done := true
	_, err := svc.Update(ctx, "t1", task.UpdateRequest{Completed: &done}, "intruder")
	require.ErrorIs(t, err, task.ErrForbidden)

	_, err = svc.Remove(ctx, "t1", "intruder")
	require.ErrorIs(t, err, task.ErrForbidden)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTaskService_EmptyUpdateOnlyTouchesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	original := storedTask()

	repo := &mocks.TaskRepository{}
	repo.On("Get", ctx, "t1").Return(storedTask(), nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := task.NewService(repo, &mocks.UserEnsurer{}, nil)
	updated, err := svc.Update(ctx, "t1", task.UpdateRequest{}, "owner")
	require.NoError(t, err)

	require.True(t, updated.UpdatedAt.After(original.UpdatedAt))
	updated.UpdatedAt = original.UpdatedAt
	require.Equal(t, original, updated)
}

func TestTaskService_PartialUpdate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("Get", ctx, "t1").Return(storedTask(), nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := task.NewService(repo, &mocks.UserEnsurer{}, nil)

	title := "Prepare final report"
	high := task.PriorityHigh
	updated, err := svc.Update(ctx, "t1", task.UpdateRequest{
		Title:        &title,
		Priority:     &high,
		ClearDueDate: true,
		Tags:         []string{"finance"},
	}, "owner")
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.Equal(t, task.PriorityHigh, updated.Priority)
	require.Nil(t, updated.DueDate)
	require.Equal(t, []string{"finance"}, updated.Tags)
	require.NotNil(t, updated.Description)
	require.Equal(t, "p1", updated.ProjectID)
	require.False(t, updated.Completed)
}

func TestTaskService_DueDatesNormalizedToUTC(t *testing.T) {
	ctx := context.Background()
	owner := user.Profile{ID: "owner"}
	plus2 := time.FixedZone("UTC+2", 2*60*60)

	repo := &mocks.TaskRepository{}
	users := &mocks.UserEnsurer{}
	users.On("Ensure", ctx, owner).Return(nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	repo.On("Get", ctx, "t1").Return(storedTask(), nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := task.NewService(repo, users, nil)

	due := time.Date(2025, 11, 6, 0, 0, 0, 0, plus2)
	created, err := svc.Create(ctx, owner, task.CreateRequest{Title: "Call bank", ProjectID: "p1", DueDate: &due})
	require.NoError(t, err)
	require.Equal(t, time.UTC, created.DueDate.Location())
	require.True(t, due.Equal(*created.DueDate))
	require.Equal(t, plus2, due.Location())

	moved := time.Date(2025, 11, 8, 0, 0, 0, 0, plus2)
	updated, err := svc.Update(ctx, "t1", task.UpdateRequest{DueDate: &moved}, "owner")
	require.NoError(t, err)
	require.Equal(t, time.UTC, updated.DueDate.Location())
	require.True(t, moved.Equal(*updated.DueDate))
}

func TestTaskService_RemoveReturnsDeleted(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("Get", ctx, "t1").Return(storedTask(), nil)
	repo.On("Delete", ctx, "t1").Return(nil)

	svc := task.NewService(repo, &mocks.UserEnsurer{}, nil)
	removed, err := svc.Remove(ctx, "t1", "owner")
	require.NoError(t, err)
	require.Equal(t, "t1", removed.ID)
	repo.AssertExpectations(t)
}

func TestTaskService_SearchDelegatesToRepository(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TaskRepository{}
	repo.On("SearchByTitle", ctx, "owner", "WORK").Return([]task.Task{{ID: "t1", Title: "Work meeting"}}, nil)

	svc := task.NewService(repo, &mocks.UserEnsurer{}, nil)
	found, err := svc.SearchByTitle(ctx, "WORK", "owner")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].Tags)
}
