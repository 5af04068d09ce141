package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
)

// Pagination defaults and caps for contact listing.
const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// ContactLister defines the interface that the service must implement.
type ContactLister interface {
	List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]models.ContactDB, error)
}

// NewListContactsHandler returns an HTTP handler that lists the
// authenticated user's contacts.
// @Summary List contacts
// @Description Returns the user's contacts ordered by creation time. Supports skip/limit pagination.
// @Tags contacts
// @Produce json
// @Param skip query int false "Number of contacts to skip" default(0)
// @Param limit query int false "Maximum number of contacts to return" default(100)
// @Success 200 {array} models.ContactDB "Contacts"
// @Failure 401 {object} handlers.ContactErrorResponse "Unauthorized"
// @Router /api/contacts [get]
// @Security BearerAuth
func NewListContactsHandler(svc ContactLister, tokenGetter ContactTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		skip := queryInt(r, "skip", 0)
		limit := queryInt(r, "limit", defaultListLimit)
		if skip < 0 {
			skip = 0
		}
		if limit <= 0 || limit > maxListLimit {
			limit = defaultListLimit
		}

		contacts, err := svc.List(r.Context(), ownerID, skip, limit)
		if err != nil {
			logger.Log.Errorw("failed to list contacts", "ownerID", ownerID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(contacts)
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
