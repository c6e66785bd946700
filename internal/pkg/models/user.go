package models

import (
	"github.com/google/uuid"
)

// Profile represents a registered user profile as stored by the
// registration flow. This service only reads profiles to resolve
// payment callbacks to an owning user.
type Profile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	Role        string    `json:"role" db:"role"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
}

// UserIdentity is the transient identity extracted from a verified
// bearer token. It exists only for the duration of one request.
type UserIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
