package domain

import (
	"errors"
	"time"
)

var ErrContactNotFound = errors.New("contact message not found")

// ContactMessage is a public contact-form submission, upserted by email so a
// visitor resubmitting replaces their previous message.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
