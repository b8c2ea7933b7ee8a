package ports

import (
	"context"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// ContactRepository upserts contact messages by email.
type ContactRepository interface {
	UpsertByEmail(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	FindAll(ctx context.Context) ([]*domain.ContactMessage, error)
	DeleteByID(ctx context.Context, id string) error
}

// ContactService handles public contact-form intake.
type ContactService interface {
	Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	ListAll(ctx context.Context) ([]*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
