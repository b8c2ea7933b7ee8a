package ports

import (
	"context"
	"time"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// VerifyOptions tweaks token verification. IgnoreExpiration is used only
// during logout so an already-expired token can still be blacklisted.
type VerifyOptions struct {
	IgnoreExpiration bool
}

// TokenService signs and verifies the stateless access/refresh tokens.
// Revocation is layered on top via TokenBlacklist so the verifier can be
// swapped (e.g. for a public-key check) without touching the denylist.
type TokenService interface {
	IssueAccess(userID string) (string, error)
	IssueRefresh(userID string) (string, error)
	Verify(token string, opts VerifyOptions) (*domain.TokenClaims, error)
}

// TokenBlacklist records revoked tokens until their natural expiry. Add is
// idempotent per token value: a second Add for the same token returns
// domain.ErrTokenAlreadyRevoked, which callers treat as benign. Entries past
// expiresAt may be garbage-collected by the store at any time.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
