package service

import (
	"context"
	"time"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// AgreementService records e-signed agreements and flags the signing user.
type AgreementService struct {
	agreements ports.AgreementRepository
	users      ports.UserRepository
}

func NewAgreementService(agreements ports.AgreementRepository, users ports.UserRepository) *AgreementService {
	return &AgreementService{agreements: agreements, users: users}
}

func (s *AgreementService) Submit(ctx context.Context, actor *domain.User, in ports.AgreementInput) (*domain.Agreement, error) {
	if in.AgreementText == "" || in.Signature == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	created, err := s.agreements.Create(ctx, &domain.Agreement{
		UserID:        actor.ID,
		FormID:        in.FormID,
		AgreementText: in.AgreementText,
		Signature:     in.Signature,
		SignedAt:      now,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.users.SetAgreementSigned(ctx, actor.ID); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AgreementService) ListByUser(ctx context.Context, actor *domain.User, userID string) ([]*domain.Agreement, error) {
	if !canAccess(actor, userID) {
		return nil, domain.ErrForbidden
	}
	return s.agreements.FindByUserID(ctx, userID)
}
