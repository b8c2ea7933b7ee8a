package domain

import (
	"errors"
	"time"
)

var ErrFormNotFound = errors.New("form not found")
var ErrFormAlreadySubmitted = errors.New("form already submitted")
var ErrForbidden = errors.New("access forbidden")

// Form is a dynamic form filled in by a user. Data carries the free-form
// field values; the backend does not interpret them.
type Form struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Data        map[string]any `json:"data"`
	Submitted   bool           `json:"submitted"`
	SubmittedAt *time.Time     `json:"submittedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// FormStats summarises a user's form progress.
type FormStats struct {
	Total     int `json:"total"`
	Submitted int `json:"submitted"`
	Left      int `json:"left"`
}
