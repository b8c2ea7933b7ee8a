package domain

import (
	"errors"
	"time"
)

var ErrValidation = errors.New("invalid input")
var ErrEmailTaken = errors.New("user already exists with this email")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserBlocked = errors.New("user account is blocked")
var ErrAdminOnly = errors.New("admin access only")

// User models an account in the system. LoginLogs is append-only; every
// successful login adds one timestamp.
type User struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	PasswordHash    string      `json:"-"`
	NationalID      string      `json:"nationalId"`
	Avatar          string      `json:"avatar,omitempty"`
	AgreementSigned bool        `json:"agreementSigned"`
	IsAdmin         bool        `json:"isAdmin"`
	IsBlocked       bool        `json:"isBlocked"`
	LoginLogs       []time.Time `json:"loginLogs,omitempty"`
	RefreshToken    string      `json:"-"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to API responses: the password hash
// and any stored refresh-token reference are stripped.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	clone.RefreshToken = ""
	return &clone
}
