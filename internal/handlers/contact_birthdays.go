package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
)

// BirthdayLister defines the interface that the service must implement.
type BirthdayLister interface {
	UpcomingBirthdays(ctx context.Context, ownerID uuid.UUID) ([]models.ContactDB, error)
}

// NewBirthdaysHandler returns an HTTP handler that lists contacts with
// birthdays in the upcoming window.
// @Summary Upcoming birthdays
// @Description Returns the user's contacts whose birthday falls within the configured number of days from today, year wraparound included.
// @Tags contacts
// @Produce json
// @Success 200 {array} models.ContactDB "Contacts with upcoming birthdays"
// @Failure 401 {object} handlers.ContactErrorResponse "Unauthorized"
// @Router /api/contacts/birthdays [get]
// @Security BearerAuth
func NewBirthdaysHandler(svc BirthdayLister, tokenGetter ContactTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		contacts, err := svc.UpcomingBirthdays(r.Context(), ownerID)
		if err != nil {
			logger.Log.Errorw("failed to list upcoming birthdays", "ownerID", ownerID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ContactErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(contacts)
	}
}
