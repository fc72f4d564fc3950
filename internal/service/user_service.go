package service

import (
	"context"

	"wordtower/internal/logger"
	"wordtower/internal/models"
	"wordtower/internal/repository"
)

// UserService handles learner record lifecycle. Reads degrade to empty on
// store failure; writes report their error so the caller knows nothing
// was persisted.
type UserService struct {
	users *repository.UserRepository
	log   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(users *repository.UserRepository, log *logger.Logger) *UserService {
	return &UserService{users: users, log: log.With("component", "users")}
}

// Upsert merges the user record by id and refreshes last_active.
func (s *UserService) Upsert(ctx context.Context, user models.User) error {
	return s.users.Upsert(ctx, user)
}

// Get returns one user; repository.ErrNotFound when the id is unknown.
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	return s.users.Get(ctx, id)
}

// List returns every user ordered by score descending.
func (s *UserService) List(ctx context.Context) []models.User {
	users, err := s.users.List(ctx)
	if err != nil {
		s.log.Warn("user list query failed", "error", err)
		return nil
	}
	return users
}

// Leaderboard returns the top limit users by score.
func (s *UserService) Leaderboard(ctx context.Context, limit int) []models.User {
	users, err := s.users.Leaderboard(ctx, limit)
	if err != nil {
		s.log.Warn("leaderboard query failed", "error", err)
		return nil
	}
	return users
}

// Delete removes a user and every relationship it holds.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// DeleteAll removes every user record.
func (s *UserService) DeleteAll(ctx context.Context) error {
	return s.users.DeleteAll(ctx)
}

// Reset zeroes a user's counters and floor while keeping the record.
func (s *UserService) Reset(ctx context.Context, id string) error {
	return s.users.Reset(ctx, id)
}

// SetParentPassword stores the parent password for a learner.
func (s *UserService) SetParentPassword(ctx context.Context, id, password string) error {
	return s.users.SetParentPassword(ctx, id, password)
}

// ParentPassword returns the stored parent password, empty when unset.
func (s *UserService) ParentPassword(ctx context.Context, id string) string {
	password, err := s.users.ParentPassword(ctx, id)
	if err != nil {
		s.log.Warn("parent password query failed", "error", err)
		return ""
	}
	return password
}
