package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/busybee/internal/repository"
)

// Service keeps local user rows in step with verified identities.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new user service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Ensure creates the user on first sight and refreshes email/name when they changed.
func (s *Service) Ensure(ctx context.Context, p Profile) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidInput
	}

	existing, err := s.repo.Get(ctx, p.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.create(ctx, p)
	}
	if err != nil {
		return fmt.Errorf("getting user: %w", err)
	}

	updated := *existing
	changed := false
	if p.Email != nil && *p.Email != "" && existing.Email != *p.Email {
		updated.Email = *p.Email
		changed = true
	}
	if p.Name != nil && (existing.Name == nil || *existing.Name != *p.Name) {
		name := *p.Name
		updated.Name = &name
		changed = true
	}
	if !changed {
		return nil
	}

	updated.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, &updated); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	s.logger.Debug("user profile refreshed", "user_id", p.ID)
	return nil
}

func (s *Service) create(ctx context.Context, p Profile) error {
	email := DefaultEmail
	if p.Email != nil && *p.Email != "" {
		email = *p.Email
	}
	now := s.now().UTC()
	u := &User{
		ID:        p.ID,
		Email:     email,
		Name:      p.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrConflict) {
		// Lost a first-sight race with a concurrent request for the same user.
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	s.logger.Info("user created", "user_id", p.ID)
	return nil
}
