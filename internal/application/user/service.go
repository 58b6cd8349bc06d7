package user

import (
	"context"
	"log/slog"
	"sort"

	"github.com/institute-cms/internal/domain"
)

// Service covers the admin-side user management operations.
type Service interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
	PromoteToAdmin(ctx context.Context, userID string) (*domain.User, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetRole(ctx context.Context, userID, role string) (*domain.User, error)
	Delete(ctx context.Context, u *domain.User) error
}

type service struct {
	repo userStore
}

type ServiceDeps struct {
	UserRepo userStore
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.UserRepo}
}

// List returns users oldest first.
func (s *service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *service) Delete(ctx context.Context, userID string) error {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, u); err != nil {
		return err
	}
	slog.Info("user deleted", "user_id", userID)
	return nil
}

// PromoteToAdmin is idempotent: promoting an admin returns it unchanged.
func (s *service) PromoteToAdmin(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.IsAdmin() {
		return u, nil
	}
	u, err = s.repo.SetRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	slog.Info("user promoted", "user_id", userID)
	return u, nil
}
