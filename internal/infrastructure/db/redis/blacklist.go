package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

// TokenBlacklist is the revocation set for logged-out tokens, backed by Redis.
// Each entry lives exactly until the token's own expiry: past that point the
// token fails verification anyway, so letting Redis drop the key has no
// semantic effect, only bounded storage.
// Key format: blacklist:<token>
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist creates a TokenBlacklist wrapping the given Redis client.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Add records token as revoked until expiresAt. A token that is already
// present returns domain.ErrTokenAlreadyRevoked; a token already past its
// expiry is accepted as a no-op (blacklisting it would be redundant).
func (b *TokenBlacklist) Add(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	ok, err := b.client.SetNX(ctx, b.key(token), "1", ttl).Result()
	if err != nil {
		return fmt.Errorf("blacklist add: %w", err)
	}
	if !ok {
		return domain.ErrTokenAlreadyRevoked
	}
	return nil
}

// IsBlacklisted reports whether token has been revoked and is still inside
// its original validity window.
func (b *TokenBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist check: %w", err)
	}
	return n > 0, nil
}

func (b *TokenBlacklist) key(token string) string {
	return "blacklist:" + token
}
