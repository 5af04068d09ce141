package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekovalova/contactbook/internal/jwt"
	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
	"github.com/ekovalova/contactbook/internal/services"
	"github.com/ekovalova/contactbook/internal/validation"
	"github.com/google/uuid"
)

// ContactTokener defines the token methods shared by the contact handlers.
type ContactTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string, expected jwt.Scope) (*jwt.Claims, error)
}

// ContactCreator defines the interface that the service must implement.
type ContactCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, input validation.ContactInput) (*models.ContactDB, error)
}

// ContactErrorResponse represents an error response for contact operations
// swagger:model ContactErrorResponse
type ContactErrorResponse struct {
	// Error message
	// default: Contact not found
	Error string `json:"error"`

	// Per-field validation details, present on validation failures
	Details []validation.Violation `json:"details,omitempty"`
}

// ownerFromRequest resolves the authenticated owner from the bearer token.
func ownerFromRequest(w http.ResponseWriter, r *http.Request, tokenGetter ContactTokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr, jwt.ScopeAccess)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// NewCreateContactHandler returns an HTTP handler for creating a contact.
// @Summary Create contact
// @Description Creates a contact owned by the authenticated user. Contact email must be unique across all users.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body validation.ContactInput true "Contact fields"
// @Success 201 {object} models.ContactDB "Created contact"
// @Failure 400 {object} handlers.ContactErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ContactErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ContactErrorResponse "Contact email already exists"
// @Router /api/contacts [post]
// @Security BearerAuth
func NewCreateContactHandler(svc ContactCreator, tokenGetter ContactTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		var input validation.ContactInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Invalid request body"})
			return
		}

		contact, err := svc.Create(r.Context(), ownerID, input)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ContactErrorResponse{
					Error:   "Validation failed",
					Details: vErr.Violations,
				})
			case errors.Is(err, services.ErrContactEmailExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ContactErrorResponse{Error: "A contact with this email already exists"})
			default:
				logger.Log.Errorw("failed to create contact", "ownerID", ownerID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(contact)
	}
}
