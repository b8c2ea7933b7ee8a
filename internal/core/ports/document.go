package ports

import (
	"context"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// DocumentRepository upserts user documents by email.
type DocumentRepository interface {
	UpsertByEmail(ctx context.Context, doc *domain.UserDocument) (*domain.UserDocument, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserDocument, error)
}

// OTPStore holds short-lived email verification codes. Codes self-expire; a
// verified marker outlives the code long enough for the upload step to
// consume it.
type OTPStore interface {
	Put(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	MarkVerified(ctx context.Context, email string) error
	IsVerified(ctx context.Context, email string) (bool, error)
}

// DocumentInput carries the upload payload.
type DocumentInput struct {
	Name       string
	Email      string
	Phone      string
	NationalID string
	Photo      string
	Signature  string
}

// DocumentService runs the OTP-gated document upload flow.
type DocumentService interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	Upload(ctx context.Context, in DocumentInput) (*domain.UserDocument, error)
}
