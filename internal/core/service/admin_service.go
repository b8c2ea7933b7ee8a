package service

import (
	"context"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// AdminService implements admin user moderation.
type AdminService struct {
	users ports.UserRepository
}

func NewAdminService(users ports.UserRepository) *AdminService {
	return &AdminService{users: users}
}

// ListUsers returns all non-admin accounts, password stripped.
func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}

func (s *AdminService) BlockUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.SetBlocked(ctx, id, true)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *AdminService) UnblockUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.SetBlocked(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.users.DeleteByID(ctx, id)
}

func (s *AdminService) UpdateProfile(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = in.Name
	user.Email = in.Email
	user.Phone = in.Phone
	user.NationalID = in.NationalID
	user.IsAdmin = in.IsAdmin

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return updated.Sanitized(), nil
}
