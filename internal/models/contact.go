package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactDB represents a contact row in the database
type ContactDB struct {
	ContactID      uuid.UUID `json:"contact_id" db:"contact_id"`           // Unique contact identifier
	OwnerID        uuid.UUID `json:"owner_id" db:"owner_id"`               // Identifier of the owning user
	FirstName      string    `json:"first_name" db:"first_name"`           // First name
	LastName       string    `json:"last_name" db:"last_name"`             // Last name
	Email          string    `json:"email" db:"email"`                     // Globally unique contact email
	PhoneNumber    string    `json:"phone_number" db:"phone_number"`       // Phone number
	Birthday       Date      `json:"birthday" db:"birthday"`               // Calendar date, no time component
	AdditionalInfo *string   `json:"additional_info" db:"additional_info"` // Optional free-text notes
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Timestamp when the contact was created
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Timestamp of the last contact update
}

// ContactPatch carries a partial contact update. Nil fields leave the
// stored value unchanged.
type ContactPatch struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	PhoneNumber    *string `json:"phone_number"`
	Birthday       *Date   `json:"birthday"`
	AdditionalInfo *string `json:"additional_info"`
}
