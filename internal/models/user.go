package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Unique user identifier
	Username     string    `json:"username" db:"username"`           // Unique username
	Email        string    `json:"email" db:"email"`                 // Unique email, the login key
	PasswordHash string    `json:"-" db:"password_hash"`             // Bcrypt hash, never serialized
	Avatar       *string   `json:"avatar" db:"avatar"`               // Avatar URL, nil until uploaded
	RefreshToken *string   `json:"-" db:"refresh_token"`             // Currently valid refresh token, nil after logout
	Confirmed    bool      `json:"confirmed" db:"confirmed"`         // Whether the email was confirmed
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Timestamp of the last user update
}
