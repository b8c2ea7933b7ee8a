package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

const (
	otpTTL = 10 * time.Minute
	// The verified marker outlives the code so the upload step has time to
	// run after verification.
	verifiedTTL = 30 * time.Minute
)

// OTPStore keeps short-lived email verification codes in Redis.
// Key formats: otp:<email> and otp-verified:<email>
type OTPStore struct {
	client *redis.Client
}

// NewOTPStore creates an OTPStore wrapping the given Redis client.
func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

// Put stores the code for email, replacing any previous one and resetting the
// expiry window.
func (s *OTPStore) Put(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, s.codeKey(email), code, otpTTL).Err(); err != nil {
		return fmt.Errorf("otp put: %w", err)
	}
	// A new code invalidates any earlier verification.
	if err := s.client.Del(ctx, s.verifiedKey(email)).Err(); err != nil {
		return fmt.Errorf("otp put: %w", err)
	}
	return nil
}

// Get returns the stored code, or domain.ErrOTPInvalid when no live code
// exists for the email.
func (s *OTPStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, s.codeKey(email)).Result()
	if err == redis.Nil {
		return "", domain.ErrOTPInvalid
	}
	if err != nil {
		return "", fmt.Errorf("otp get: %w", err)
	}
	return code, nil
}

// MarkVerified consumes the code and flags the email as verified.
func (s *OTPStore) MarkVerified(ctx context.Context, email string) error {
	if err := s.client.Set(ctx, s.verifiedKey(email), "1", verifiedTTL).Err(); err != nil {
		return fmt.Errorf("otp mark verified: %w", err)
	}
	if err := s.client.Del(ctx, s.codeKey(email)).Err(); err != nil {
		return fmt.Errorf("otp mark verified: %w", err)
	}
	return nil
}

// IsVerified reports whether the email passed OTP verification recently.
func (s *OTPStore) IsVerified(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Exists(ctx, s.verifiedKey(email)).Result()
	if err != nil {
		return false, fmt.Errorf("otp verified check: %w", err)
	}
	return n > 0, nil
}

func (s *OTPStore) codeKey(email string) string {
	return "otp:" + email
}

func (s *OTPStore) verifiedKey(email string) string {
	return "otp-verified:" + email
}
