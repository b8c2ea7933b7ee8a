package ports

import (
	"context"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// AgreementRepository defines persistence for e-signed agreements.
type AgreementRepository interface {
	Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Agreement, error)
}

// AgreementInput carries an agreement submission.
type AgreementInput struct {
	FormID        string
	AgreementText string
	Signature     string
}

// AgreementService records signed agreements and flags the user as signed.
type AgreementService interface {
	Submit(ctx context.Context, actor *domain.User, in AgreementInput) (*domain.Agreement, error)
	ListByUser(ctx context.Context, actor *domain.User, userID string) ([]*domain.Agreement, error)
}
