package ports

import (
	"context"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// RegisterInput carries the registration fields after transport-level
// validation; the service revalidates them.
type RegisterInput struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	NationalID string
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Tokens  domain.TokenPair
	UserID  string
	IsAdmin bool
}

// VerifyResult is the outcome of a side-effect-free token check.
type VerifyResult struct {
	IsValid bool                `json:"isValid"`
	Decoded *domain.TokenClaims `json:"decoded"`
}

// AuthService orchestrates the credential lifecycle:
// Anonymous -> Authenticated(access) -> Authenticated(refreshed) -> Revoked.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, domain.TokenPair, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
	VerifyToken(ctx context.Context, token string) (*VerifyResult, error)
}
