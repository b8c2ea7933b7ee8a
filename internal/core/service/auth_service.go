package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// AuthOptions tunes orchestrator policy.
type AuthOptions struct {
	// RevokeRotatedRefresh blacklists the presented refresh token after a
	// successful rotation. Off by default: the original behaviour is a
	// sliding session where the prior refresh token stays usable until it
	// expires naturally.
	RevokeRotatedRefresh bool
	// FrontendURL is linked from the welcome email.
	FrontendURL string
}

// AuthService implements the credential lifecycle atop the user store, the
// token signer/verifier and the blacklist.
type AuthService struct {
	users     ports.UserRepository
	tokens    ports.TokenService
	blacklist ports.TokenBlacklist
	mail      ports.MailQueue
	opts      AuthOptions
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenService,
	blacklist ports.TokenBlacklist,
	mail ports.MailQueue,
	opts AuthOptions,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
		mail:      mail,
		opts:      opts,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, domain.TokenPair, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Password == "" || in.NationalID == "" {
		return nil, domain.TokenPair{}, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		NationalID:   in.NationalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	pair, err := s.issuePair(ctx, created.ID)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	// Welcome mail is best effort: queued after the account exists, its
	// failure never reaches the caller and never rolls the account back.
	s.mail.Enqueue(ports.Email{
		To:       created.Email,
		Subject:  "Welcome to Aspire Career Consultancy",
		TextBody: fmt.Sprintf("Hello %s, your account has been created. Log in at %s with %s.", created.Name, s.opts.FrontendURL, created.Email),
		HTMLBody: fmt.Sprintf(
			`<div style="font-family: Arial, sans-serif; color: #333;"><h2>Welcome, %s!</h2><p>Your account is ready. Your login email is <strong>%s</strong>.</p><a href="%s">Login Now</a></div>`,
			created.Name, created.Email, s.opts.FrontendURL,
		),
	})

	return created.Sanitized(), pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	// Lookup and password check share one failure shape so a missing user is
	// indistinguishable from a wrong password.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, domain.ErrUserBlocked
	}

	if err := s.users.AppendLoginLog(ctx, user.ID, time.Now().UTC()); err != nil {
		return nil, err
	}

	pair, err := s.issuePair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{Tokens: pair, UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	if refreshToken == "" {
		return domain.TokenPair{}, domain.ErrMissingToken
	}

	claims, err := s.tokens.Verify(refreshToken, ports.VerifyOptions{})
	if err != nil {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}
	if _, err := s.users.FindByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.TokenPair{}, domain.ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}

	pair, err := s.issuePair(ctx, claims.UserID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	if s.opts.RevokeRotatedRefresh {
		if err := s.blacklist.Add(ctx, refreshToken, claims.ExpiresAt); err != nil &&
			!errors.Is(err, domain.ErrTokenAlreadyRevoked) {
			return domain.TokenPair{}, err
		}
	}

	return pair, nil
}

func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return domain.ErrMissingToken
	}

	// Expiry is ignored here on purpose: blacklisting a token that already
	// expired naturally is harmless and lets clients log out defensively.
	claims, err := s.tokens.Verify(accessToken, ports.VerifyOptions{IgnoreExpiration: true})
	if err != nil {
		return domain.ErrInvalidToken
	}
	if claims.ExpiresAt.IsZero() {
		return domain.ErrInvalidToken
	}

	if err := s.blacklist.Add(ctx, accessToken, claims.ExpiresAt); err != nil {
		if !errors.Is(err, domain.ErrTokenAlreadyRevoked) {
			return err
		}
		s.log.Debug().Str("user_id", claims.UserID).Msg("token already blacklisted")
	}

	if err := s.users.ClearRefreshToken(ctx, claims.UserID); err != nil &&
		!errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (*ports.VerifyResult, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	claims, err := s.tokens.Verify(token, ports.VerifyOptions{})
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrNotAuthorized
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	return &ports.VerifyResult{IsValid: true, Decoded: claims}, nil
}

func (s *AuthService) issuePair(ctx context.Context, userID string) (domain.TokenPair, error) {
	access, err := s.tokens.IssueAccess(userID)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(userID)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}
	if err := s.users.SetRefreshToken(ctx, userID, refresh); err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
