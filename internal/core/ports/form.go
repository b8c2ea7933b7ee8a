package ports

import (
	"context"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// FormRepository defines persistence for dynamic forms.
type FormRepository interface {
	Create(ctx context.Context, form *domain.Form) (*domain.Form, error)
	FindByID(ctx context.Context, id string) (*domain.Form, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Form, error)
	FindAll(ctx context.Context) ([]*domain.Form, error)
	Update(ctx context.Context, form *domain.Form) (*domain.Form, error)
	DeleteByID(ctx context.Context, id string) error
}

// FormService exposes form CRUD with owner-or-admin authorization. The actor
// is the identity resolved by the request gate.
type FormService interface {
	Create(ctx context.Context, actor *domain.User, data map[string]any) (*domain.Form, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Form, error)
	Update(ctx context.Context, actor *domain.User, id string, data map[string]any) (*domain.Form, error)
	Submit(ctx context.Context, actor *domain.User, id string) (*domain.Form, error)
	ListByUser(ctx context.Context, actor *domain.User, userID string) ([]*domain.Form, error)
	ListAll(ctx context.Context, actor *domain.User) ([]*domain.Form, error)
	StatsByUser(ctx context.Context, actor *domain.User, userID string) (*domain.FormStats, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
