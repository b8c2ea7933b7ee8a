package domain

import (
	"errors"
	"time"
)

var ErrAgreementNotFound = errors.New("agreement not found")

// Agreement records an e-signed agreement. FormID is set when the agreement
// belongs to a specific form submission, empty for standalone agreements.
type Agreement struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	FormID        string    `json:"formId,omitempty"`
	AgreementText string    `json:"agreementText"`
	Signature     string    `json:"signature"`
	SignedAt      time.Time `json:"signedAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
