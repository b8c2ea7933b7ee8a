package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	token, err := svc.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	claims, err := svc.Verify(token, ports.VerifyOptions{})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry should be in the future")
	}
}

func TestTokenService_RefreshOutlivesAccess(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	access, err := svc.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	refresh, err := svc.IssueRefresh("user-1")
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	accessClaims, err := svc.Verify(access, ports.VerifyOptions{})
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	refreshClaims, err := svc.Verify(refresh, ports.VerifyOptions{})
	if err != nil {
		t.Fatalf("verify refresh: %v", err)
	}
	if !refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt) {
		t.Fatalf("refresh token should expire after access token")
	}
}

// signExpiredToken mints a structurally valid token whose expiry is an hour
// in the past.
func signExpiredToken(t *testing.T, secret, userID string) string {
	t.Helper()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)
	token := signExpiredToken(t, "secret", "user-1")

	if _, err := svc.Verify(token, ports.VerifyOptions{}); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	// Logout still needs the claims from an expired token.
	claims, err := svc.Verify(token, ports.VerifyOptions{IgnoreExpiration: true})
	if err != nil {
		t.Fatalf("verify with IgnoreExpiration: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)
	other := NewTokenService("other-secret", time.Hour, 7*24*time.Hour)

	token, err := other.IssueAccess("user-1")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}

	if _, err := svc.Verify(token, ports.VerifyOptions{}); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	if _, err := svc.Verify("not-a-token", ports.VerifyOptions{}); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_MissingSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	// Structurally valid JWT signed with the right secret but no id claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token, ports.VerifyOptions{}); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_MissingExpiry(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 7*24*time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "user-1",
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token, ports.VerifyOptions{IgnoreExpiration: true}); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
