package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
)

// ContactSearcher defines the interface that the service must implement.
type ContactSearcher interface {
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]models.ContactDB, error)
}

// NewSearchContactsHandler returns an HTTP handler that searches the
// user's contacts by name or email substring.
// @Summary Search contacts
// @Description Case-insensitive substring match over first name, last name and email, scoped to the user's own contacts.
// @Tags contacts
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.ContactDB "Matching contacts"
// @Failure 401 {object} handlers.ContactErrorResponse "Unauthorized"
// @Router /api/contacts/search [get]
// @Security BearerAuth
func NewSearchContactsHandler(svc ContactSearcher, tokenGetter ContactTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		query := r.URL.Query().Get("q")

		contacts, err := svc.Search(r.Context(), ownerID, query)
		if err != nil {
			logger.Log.Errorw("failed to search contacts", "ownerID", ownerID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(contacts)
	}
}
