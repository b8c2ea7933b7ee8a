package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

const (
	defaultAccessTTL  = 24 * time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenService signs and verifies HS256 tokens carrying {id, iat, exp}.
// Tokens are self-contained; validity never requires a store lookup.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (s *TokenService) IssueAccess(userID string) (string, error) {
	return s.sign(userID, s.accessTTL)
}

func (s *TokenService) IssueRefresh(userID string) (string, error) {
	return s.sign(userID, s.refreshTTL)
}

func (s *TokenService) sign(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and structure, returning the decoded claims.
// Fails domain.ErrInvalidToken on a bad signature or a claim set missing id
// or exp, and domain.ErrTokenExpired past expiry unless opts.IgnoreExpiration.
func (s *TokenService) Verify(token string, opts ports.VerifyOptions) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if opts.IgnoreExpiration {
		parserOpts = append(parserOpts, jwt.WithoutClaimsValidation())
	}

	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["id"].(string)
	expUnix, hasExp := claims["exp"].(float64)
	if userID == "" || !hasExp {
		return nil, domain.ErrInvalidToken
	}

	out := &domain.TokenClaims{
		UserID:    userID,
		ExpiresAt: time.Unix(int64(expUnix), 0),
	}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iat), 0)
	}
	if !opts.IgnoreExpiration && time.Now().After(out.ExpiresAt) {
		return nil, domain.ErrTokenExpired
	}
	return out, nil
}
