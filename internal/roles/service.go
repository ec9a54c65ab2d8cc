package roles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"showtime/internal/users"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

type Service interface {
	ListUsersWithRoles(ctx context.Context) ([]UserWithRoles, error)
	AddRole(ctx context.Context, userID uuid.UUID, role string) error
	RemoveRole(ctx context.Context, userID uuid.UUID, role string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUsersWithRoles(ctx context.Context) ([]UserWithRoles, error) {
	all, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(all))
	for _, u := range all {
		ids = append(ids, u.ID)
	}

	granted, err := s.repo.ListRolesByUser(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list granted roles: %w", err)
	}

	result := make([]UserWithRoles, 0, len(all))
	for _, u := range all {
		// The primary role always appears alongside explicit grants
		roleSet := append([]string{string(u.Role)}, granted[u.ID]...)
		result = append(result, UserWithRoles{
			ID:        u.ID.String(),
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Roles:     dedupe(roleSet),
			CreatedAt: u.CreatedAt,
		})
	}
	return result, nil
}

func (s *service) AddRole(ctx context.Context, userID uuid.UUID, role string) error {
	role = strings.ToUpper(role)
	if !users.IsValidRole(role) {
		return ErrInvalidRole
	}

	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	return s.repo.AddRole(ctx, userID, role)
}

func (s *service) RemoveRole(ctx context.Context, userID uuid.UUID, role string) error {
	role = strings.ToUpper(role)
	if !users.IsValidRole(role) {
		return ErrInvalidRole
	}

	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	return s.repo.RemoveRole(ctx, userID, role)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
