package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/services"
)

// ContactDeleter defines the interface that the service must implement.
type ContactDeleter interface {
	Delete(ctx context.Context, ownerID, contactID uuid.UUID) error
}

// NewDeleteContactHandler returns an HTTP handler that deletes a contact.
// @Summary Delete contact
// @Description Removes one of the user's contacts. Contacts owned by other users are reported as not found.
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 204 "Contact deleted"
// @Failure 401 {object} handlers.ContactErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ContactErrorResponse "Contact not found"
// @Router /api/contacts/{id} [delete]
// @Security BearerAuth
func NewDeleteContactHandler(svc ContactDeleter, tokenGetter ContactTokener) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), ownerID, contactID); err != nil {
			switch {
			case errors.Is(err, services.ErrContactNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Contact not found"})
			default:
				logger.Log.Errorw("failed to delete contact", "ownerID", ownerID, "contactID", contactID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
