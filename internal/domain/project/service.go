package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/busybee/internal/domain/user"
	"github.com/rpggio/busybee/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	users  UserEnsurer
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new project service.
func NewService(repo Repository, users UserEnsurer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, users: users, logger: logger, now: time.Now}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name  string
	Color string
	Icon  *string
}

// List returns the user's projects, oldest first.
func (s *Service) List(ctx context.Context, userID string) ([]Project, error) {
	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if projects == nil {
		projects = []Project{}
	}
	return projects, nil
}

// Get fetches a project owned by userID.
func (s *Service) Get(ctx context.Context, id, userID string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	if proj.UserID != userID {
		return nil, ErrForbidden
	}
	return proj, nil
}

// Create ensures the owner exists and stores a new project for them.
func (s *Service) Create(ctx context.Context, owner user.Profile, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Color) == "" {
		return nil, ErrInvalidInput
	}

	if err := s.users.Ensure(ctx, owner); err != nil {
		return nil, fmt.Errorf("ensuring user: %w", err)
	}

	now := s.now().UTC()
	proj := &Project{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Color:     req.Color,
		Icon:      req.Icon,
		UserID:    owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "project_id", proj.ID, "user_id", owner.ID)
	return proj, nil
}

// Delete removes a project owned by userID and returns it.
func (s *Service) Delete(ctx context.Context, id, userID string) (*Project, error) {
	proj, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("deleting project: %w", err)
	}

	s.logger.Info("project deleted", "project_id", id, "user_id", userID)
	return proj, nil
}
