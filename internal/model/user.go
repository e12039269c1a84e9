package model

import "github.com/google/uuid"

// SessionUser is the identity resolved from the auth service's session store.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Image *string   `json:"image"`
}

// UserSummary is the author shape embedded in posts and comments.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Image *string   `json:"image"`
}
