package domain

import (
	"errors"
	"time"
)

var ErrOTPInvalid = errors.New("invalid or expired OTP")
var ErrEmailNotVerified = errors.New("email not verified")

// UserDocument holds the identity documents a user uploads before
// registration, keyed by email.
type UserDocument struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	NationalID   string    `json:"nationalId"`
	Photo        string    `json:"photo,omitempty"`
	Signature    string    `json:"signature,omitempty"`
	IsRegistered bool      `json:"isRegistered"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
