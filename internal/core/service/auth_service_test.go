package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: map[string]*domain.User{},
		byID:    map[string]*domain.User{},
		nextID:  "generated-id",
	}
}

func (r *stubUserRepo) add(u *domain.User) {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	clone := *user
	clone.ID = r.nextID
	r.add(&clone)
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.add(user)
	return user, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, onlyNonAdmin bool) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		if onlyNonAdmin && u.IsAdmin {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) AppendLoginLog(_ context.Context, id string, at time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LoginLogs = append(u.LoginLogs, at)
	return nil
}

func (r *stubUserRepo) SetBlocked(_ context.Context, id string, blocked bool) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsBlocked = blocked
	return u, nil
}

func (r *stubUserRepo) SetAgreementSigned(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.AgreementSigned = true
	return nil
}

func (r *stubUserRepo) SetRefreshToken(_ context.Context, id, token string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefreshToken = token
	return nil
}

func (r *stubUserRepo) ClearRefreshToken(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefreshToken = ""
	return nil
}

type stubBlacklist struct {
	entries map[string]time.Time
}

func newStubBlacklist() *stubBlacklist {
	return &stubBlacklist{entries: map[string]time.Time{}}
}

func (b *stubBlacklist) Add(_ context.Context, token string, expiresAt time.Time) error {
	if _, ok := b.entries[token]; ok {
		return domain.ErrTokenAlreadyRevoked
	}
	b.entries[token] = expiresAt
	return nil
}

func (b *stubBlacklist) IsBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := b.entries[token]
	return ok, nil
}

type stubMailQueue struct {
	sent []ports.Email
}

func (q *stubMailQueue) Enqueue(e ports.Email) {
	q.sent = append(q.sent, e)
}

func newAuthFixture(opts AuthOptions) (*AuthService, *stubUserRepo, *stubBlacklist, *stubMailQueue) {
	users := newStubUserRepo()
	blacklist := newStubBlacklist()
	mail := &stubMailQueue{}
	tokens := NewTokenService("secret", time.Hour, 7*24*time.Hour)
	svc := NewAuthService(users, tokens, blacklist, mail, opts, zerolog.Nop())
	return svc, users, blacklist, mail
}

func seedUser(t *testing.T, users *stubUserRepo, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &domain.User{
		ID:           "user-1",
		Name:         "Asha Verma",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		PasswordHash: string(hash),
		NationalID:   "123456789012",
	}
	users.add(u)
	return u
}

func validRegisterInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Password:   "s3cret-pass",
		NationalID: "123456789012",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, users, _, mail := newAuthFixture(AuthOptions{FrontendURL: "https://app.example.com"})

	user, pair, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if user.PasswordHash != "" {
		t.Fatalf("response user must not carry the password hash")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	stored := users.byEmail["asha@example.com"]
	if stored == nil {
		t.Fatalf("user was not persisted")
	}
	if stored.PasswordHash == "s3cret-pass" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.RefreshToken != pair.RefreshToken {
		t.Fatalf("refresh token was not persisted")
	}

	if len(mail.sent) != 1 {
		t.Fatalf("expected one welcome email, got %d", len(mail.sent))
	}
	if mail.sent[0].To != "asha@example.com" {
		t.Fatalf("welcome email sent to %q", mail.sent[0].To)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _, _ := newAuthFixture(AuthOptions{})

	in := validRegisterInput()
	in.Email = ""
	if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, users, _, mail := newAuthFixture(AuthOptions{})
	seedUser(t, users, "whatever")

	if _, _, err := svc.Register(context.Background(), validRegisterInput()); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(mail.sent) != 0 {
		t.Fatalf("no email should be queued on a failed registration")
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, users, _, _ := newAuthFixture(AuthOptions{})
	seedUser(t, users, "s3cret-pass")

	res, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.UserID != "user-1" {
		t.Fatalf("unexpected user id %q", res.UserID)
	}
	if res.IsAdmin {
		t.Fatalf("seed user is not an admin")
	}
	if res.Tokens.AccessToken == "" || res.Tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens")
	}
	if got := len(users.byID["user-1"].LoginLogs); got != 1 {
		t.Fatalf("expected one login log entry, got %d", got)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc, users, _, _ := newAuthFixture(AuthOptions{})
	seedUser(t, users, "s3cret-pass")

	// Unknown user and wrong password fail identically.
	if _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "asha@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if got := len(users.byID["user-1"].LoginLogs); got != 0 {
		t.Fatalf("failed logins must not be logged, got %d entries", got)
	}
}

func TestAuthService_Login_Blocked(t *testing.T) {
	svc, users, _, _ := newAuthFixture(AuthOptions{})
	u := seedUser(t, users, "s3cret-pass")
	u.IsBlocked = true

	if _, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass"); !errors.Is(err, domain.ErrUserBlocked) {
		t.Fatalf("expected ErrUserBlocked, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc, users, blacklist, _ := newAuthFixture(AuthOptions{})
	seedUser(t, users, "s3cret-pass")

	res, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	pair, err := svc.Refresh(context.Background(), res.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a fresh pair")
	}
	if users.byID["user-1"].RefreshToken != pair.RefreshToken {
		t.Fatalf("rotated refresh token was not persisted")
	}

	// Default policy keeps the old refresh token usable until it expires.
	if len(blacklist.entries) != 0 {
		t.Fatalf("rotation must not blacklist by default")
	}
	if _, err := svc.Refresh(context.Background(), res.Tokens.RefreshToken); err != nil {
		t.Fatalf("prior refresh token should still verify: %v", err)
	}
}

func TestAuthService_Refresh_RevokeRotated(t *testing.T) {
	svc, users, blacklist, _ := newAuthFixture(AuthOptions{RevokeRotatedRefresh: true})
	seedUser(t, users, "s3cret-pass")

	res, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), res.Tokens.RefreshToken); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	revoked, err := blacklist.IsBlacklisted(context.Background(), res.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("blacklist check: %v", err)
	}
	if !revoked {
		t.Fatalf("rotated refresh token should be blacklisted under the revoke policy")
	}
}

func TestAuthService_Refresh_Invalid(t *testing.T) {
	svc, users, _, _ := newAuthFixture(AuthOptions{})
	seedUser(t, users, "s3cret-pass")

	if _, err := svc.Refresh(context.Background(), ""); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("empty token: expected ErrMissingToken, got %v", err)
	}
	if _, err := svc.Refresh(context.Background(), "garbage"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("garbage token: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Refresh_UserGone(t *testing.T) {
	svc, users, _, _ := newAuthFixture(AuthOptions{})
	seedUser(t, users, "s3cret-pass")

	res, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := users.DeleteByID(context.Background(), "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), res.Tokens.RefreshToken); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, users, blacklist, _ := newAuthFixture(AuthOptions{})
	seedUser(t, users, "s3cret-pass")

	res, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	access := res.Tokens.AccessToken

	if err := svc.Logout(context.Background(), access); err != nil {
		t.Fatalf("logout: %v", err)
	}
	revoked, err := blacklist.IsBlacklisted(context.Background(), access)
	if err != nil {
		t.Fatalf("blacklist check: %v", err)
	}
	if !revoked {
		t.Fatalf("access token should be blacklisted after logout")
	}
	if users.byID["user-1"].RefreshToken != "" {
		t.Fatalf("stored refresh token should be cleared on logout")
	}

	// Logging out twice is harmless.
	if err := svc.Logout(context.Background(), access); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture(AuthOptions{})

	if err := svc.Logout(context.Background(), ""); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("empty token: expected ErrMissingToken, got %v", err)
	}
	if err := svc.Logout(context.Background(), "garbage"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("garbage token: expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	svc, users, _, _ := newAuthFixture(AuthOptions{})
	seedUser(t, users, "s3cret-pass")

	res, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := svc.VerifyToken(context.Background(), res.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !out.IsValid {
		t.Fatalf("expected a valid verdict")
	}
	if out.Decoded == nil || out.Decoded.UserID != "user-1" {
		t.Fatalf("unexpected decoded claims: %+v", out.Decoded)
	}
}

func TestAuthService_VerifyToken_Failures(t *testing.T) {
	svc, users, _, _ := newAuthFixture(AuthOptions{})
	seedUser(t, users, "s3cret-pass")

	if _, err := svc.VerifyToken(context.Background(), ""); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("empty token: expected ErrMissingToken, got %v", err)
	}
	if _, err := svc.VerifyToken(context.Background(), "garbage"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("garbage token: expected ErrNotAuthorized, got %v", err)
	}

	expired := signExpiredToken(t, "secret", "user-1")
	if _, err := svc.VerifyToken(context.Background(), expired); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expired token: expected ErrTokenExpired, got %v", err)
	}

	res, err := svc.Login(context.Background(), "asha@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background(), res.Tokens.AccessToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.VerifyToken(context.Background(), res.Tokens.AccessToken); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("revoked token: expected ErrTokenRevoked, got %v", err)
	}
}
