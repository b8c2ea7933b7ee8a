package domain

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenRevoked = errors.New("token is blacklisted")
var ErrTokenAlreadyRevoked = errors.New("token already blacklisted")
var ErrMissingToken = errors.New("authorization token not provided")
var ErrNotAuthorized = errors.New("not authorized, token failed")

// TokenPair is the access/refresh credential pair handed to clients on
// registration, login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenClaims is the decoded claim set of a verified token. Tokens are
// stateless: the server never stores them, it only inspects or denylists them.
type TokenClaims struct {
	UserID    string    `json:"id"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
