package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/busybee/internal/domain/user"
	"github.com/rpggio/busybee/internal/repository"
)

// Service handles task business logic.
type Service struct {
	repo   Repository
	users  UserEnsurer
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new task service.
func NewService(repo Repository, users UserEnsurer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, users: users, logger: logger, now: time.Now}
}

// CreateRequest describes a task creation request.
type CreateRequest struct {
	Title       string
	Description *string
	Priority    Priority
	DueDate     *time.Time
	Tags        []string
	ProjectID   string
}

// UpdateRequest describes a partial task update. Nil fields are left unchanged.
// ClearDescription and ClearDueDate null out the optional fields.
type UpdateRequest struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Priority         *Priority
	DueDate          *time.Time
	ClearDueDate     bool
	Tags             []string
	ProjectID        *string
	Completed        *bool
}

// List returns the user's tasks in list order.
func (s *Service) List(ctx context.Context, userID string) ([]Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return normalize(tasks), nil
}

// Get fetches a task owned by userID. A missing task is reported before ownership.
func (s *Service) Get(ctx context.Context, id, userID string) (*Task, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	if t.UserID != userID {
		return nil, ErrForbidden
	}
	return t, nil
}

// SearchByTitle returns the user's tasks whose title contains query, ignoring case.
func (s *Service) SearchByTitle(ctx context.Context, query, userID string) ([]Task, error) {
	tasks, err := s.repo.SearchByTitle(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}
	return normalize(tasks), nil
}

// Create ensures the owner exists and stores a new task for them.
func (s *Service) Create(ctx context.Context, owner user.Profile, req CreateRequest) (*Task, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	if err := s.users.Ensure(ctx, owner); err != nil {
		return nil, fmt.Errorf("ensuring user: %w", err)
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityLow
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := s.now().UTC()
	t := &Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     utcTime(req.DueDate),
		Tags:        tags,
		Completed:   false,
		ProjectID:   req.ProjectID,
		UserID:      owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logger.Info("task created", "task_id", t.ID, "user_id", owner.ID)
	return t, nil
}

// Update applies the supplied fields to a task owned by userID.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest, userID string) (*Task, error) {
	if err := ValidateUpdateInput(req); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.ClearDescription {
		updated.Description = nil
	} else if req.Description != nil {
		updated.Description = req.Description
	}
	if req.Priority != nil {
		updated.Priority = *req.Priority
	}
	if req.ClearDueDate {
		updated.DueDate = nil
	} else if req.DueDate != nil {
		updated.DueDate = utcTime(req.DueDate)
	}
	if req.Tags != nil {
		updated.Tags = req.Tags
	}
	if req.ProjectID != nil {
		updated.ProjectID = *req.ProjectID
	}
	if req.Completed != nil {
		updated.Completed = *req.Completed
	}
	updated.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}

	s.logger.Debug("task updated", "task_id", id, "user_id", userID)
	return &updated, nil
}

// Remove deletes a task owned by userID and returns it.
func (s *Service) Remove(ctx context.Context, id, userID string) (*Task, error) {
	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("deleting task: %w", err)
	}

	s.logger.Info("task removed", "task_id", id, "user_id", userID)
	return t, nil
}

func normalize(tasks []Task) []Task {
	if tasks == nil {
		return []Task{}
	}
	for i := range tasks {
		if tasks[i].Tags == nil {
			tasks[i].Tags = []string{}
		}
	}
	return tasks
}

// utcTime stores instants in UTC so the text column sorts chronologically.
func utcTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
