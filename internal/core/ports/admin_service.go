package ports

import (
	"context"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// UpdateProfileInput carries the admin-editable profile fields.
type UpdateProfileInput struct {
	Name       string
	Email      string
	Phone      string
	NationalID string
	IsAdmin    bool
}

// AdminService covers admin user moderation. Route-level gating (admin role)
// happens in middleware; these operations assume an already-authorized caller.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	BlockUser(ctx context.Context, id string) (*domain.User, error)
	UnblockUser(ctx context.Context, id string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
}
