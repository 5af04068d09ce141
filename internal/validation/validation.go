package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/ekovalova/contactbook/internal/models"
)

// Field length bounds enforced by the schema.
const (
	MaxNameLen     = 50
	MaxEmailLen    = 100
	MaxPhoneLen    = 20
	MinPasswordLen = 6
	MaxPasswordLen = 72 // bcrypt input limit
	MaxUsernameLen = 50
)

// Violation describes a single invalid field.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error aggregates all violations found in one input.
type Error struct {
	Violations []Violation `json:"violations"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// errOrNil returns nil when no violations were collected.
func errOrNil(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// ContactInput is the full set of contact fields submitted on creation.
type ContactInput struct {
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Email          string       `json:"email"`
	PhoneNumber    string       `json:"phone_number"`
	Birthday       models.Date  `json:"birthday"`
	AdditionalInfo *string      `json:"additional_info"`
}

// ValidateContact checks all contact fields and reports every violation.
func ValidateContact(in ContactInput) error {
	var violations []Violation

	if in.FirstName == "" {
		violations = append(violations, Violation{"first_name", "must not be empty"})
	} else if len(in.FirstName) > MaxNameLen {
		violations = append(violations, Violation{"first_name", fmt.Sprintf("must be at most %d characters", MaxNameLen)})
	}

	if in.LastName == "" {
		violations = append(violations, Violation{"last_name", "must not be empty"})
	} else if len(in.LastName) > MaxNameLen {
		violations = append(violations, Violation{"last_name", fmt.Sprintf("must be at most %d characters", MaxNameLen)})
	}

	violations = append(violations, emailViolations(in.Email)...)

	if in.PhoneNumber == "" {
		violations = append(violations, Violation{"phone_number", "must not be empty"})
	} else if len(in.PhoneNumber) > MaxPhoneLen {
		violations = append(violations, Violation{"phone_number", fmt.Sprintf("must be at most %d characters", MaxPhoneLen)})
	}

	if in.Birthday.IsZero() {
		violations = append(violations, Violation{"birthday", "must be a valid date"})
	}

	return errOrNil(violations)
}

// ValidateContactPatch checks only the fields present in a partial update.
func ValidateContactPatch(patch models.ContactPatch) error {
	var violations []Violation

	if patch.FirstName != nil {
		if *patch.FirstName == "" {
			violations = append(violations, Violation{"first_name", "must not be empty"})
		} else if len(*patch.FirstName) > MaxNameLen {
			violations = append(violations, Violation{"first_name", fmt.Sprintf("must be at most %d characters", MaxNameLen)})
		}
	}
	if patch.LastName != nil {
		if *patch.LastName == "" {
			violations = append(violations, Violation{"last_name", "must not be empty"})
		} else if len(*patch.LastName) > MaxNameLen {
			violations = append(violations, Violation{"last_name", fmt.Sprintf("must be at most %d characters", MaxNameLen)})
		}
	}
	if patch.Email != nil {
		violations = append(violations, emailViolations(*patch.Email)...)
	}
	if patch.PhoneNumber != nil {
		if *patch.PhoneNumber == "" {
			violations = append(violations, Violation{"phone_number", "must not be empty"})
		} else if len(*patch.PhoneNumber) > MaxPhoneLen {
			violations = append(violations, Violation{"phone_number", fmt.Sprintf("must be at most %d characters", MaxPhoneLen)})
		}
	}

	return errOrNil(violations)
}

// ValidateRegistration checks the user registration input.
func ValidateRegistration(username, email, password string) error {
	var violations []Violation

	if username == "" {
		violations = append(violations, Violation{"username", "must not be empty"})
	} else if len(username) > MaxUsernameLen {
		violations = append(violations, Violation{"username", fmt.Sprintf("must be at most %d characters", MaxUsernameLen)})
	}

	violations = append(violations, emailViolations(email)...)

	if len(password) < MinPasswordLen {
		violations = append(violations, Violation{"password", fmt.Sprintf("must be at least %d characters", MinPasswordLen)})
	} else if len(password) > MaxPasswordLen {
		violations = append(violations, Violation{"password", fmt.Sprintf("must be at most %d characters", MaxPasswordLen)})
	}

	return errOrNil(violations)
}

func emailViolations(email string) []Violation {
	switch {
	case email == "":
		return []Violation{{"email", "must not be empty"}}
	case len(email) > MaxEmailLen:
		return []Violation{{"email", fmt.Sprintf("must be at most %d characters", MaxEmailLen)}}
	case !validEmail(email):
		return []Violation{{"email", "must be a valid email address"}}
	default:
		return nil
	}
}
