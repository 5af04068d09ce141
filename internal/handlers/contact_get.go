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
)

// ContactGetter defines the interface that the service must implement.
type ContactGetter interface {
	GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*models.ContactDB, error)
}

// NewGetContactHandler returns an HTTP handler that fetches a single
// contact by id.
// @Summary Get contact
// @Description Returns one of the user's contacts. Contacts owned by other users are reported as not found.
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.ContactDB "Contact"
// @Failure 401 {object} handlers.ContactErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ContactErrorResponse "Contact not found"
// @Router /api/contacts/{id} [get]
// @Security BearerAuth
func NewGetContactHandler(svc ContactGetter, tokenGetter ContactTokener) http.HandlerFunc {
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

		contact, err := svc.GetByID(r.Context(), ownerID, contactID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrContactNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Contact not found"})
			default:
				logger.Log.Errorw("failed to get contact", "ownerID", ownerID, "contactID", contactID, "error", err)
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
