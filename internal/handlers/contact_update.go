package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
	"github.com/ekovalova/contactbook/internal/services"
	"github.com/ekovalova/contactbook/internal/validation"
)

// ContactUpdater defines the interface that the service must implement.
type ContactUpdater interface {
	Update(ctx context.Context, ownerID, contactID uuid.UUID, patch models.ContactPatch) (*models.ContactDB, error)
}

// NewUpdateContactHandler returns an HTTP handler that applies a partial
// update to a contact.
// @Summary Update contact
// @Description Applies only the fields present in the body. An empty body is a successful no-op.
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param patch body models.ContactPatch true "Fields to change"
// @Success 200 {object} models.ContactDB "Updated contact"
// @Failure 400 {object} handlers.ContactErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ContactErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ContactErrorResponse "Contact not found"
// @Failure 409 {object} handlers.ContactErrorResponse "Contact email already exists"
// @Router /api/contacts/{id} [put]
// @Security BearerAuth
func NewUpdateContactHandler(svc ContactUpdater, tokenGetter ContactTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		contactID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Contact not found"})
			return
		}

		var patch models.ContactPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Invalid request body"})
			return
		}

		contact, err := svc.Update(r.Context(), ownerID, contactID, patch)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ContactErrorResponse{
					Error:   "Validation failed",
					Details: vErr.Violations,
				})
			case errors.Is(err, services.ErrContactNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Contact not found"})
			case errors.Is(err, services.ErrContactEmailExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ContactErrorResponse{Error: "A contact with this email already exists"})
			default:
				logger.Log.Errorw("failed to update contact", "ownerID", ownerID, "contactID", contactID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(contact)
	}
}
