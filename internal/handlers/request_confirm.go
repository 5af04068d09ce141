package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/services"
)

// ConfirmationRequester defines the interface that the service must implement.
type ConfirmationRequester interface {
	RequestConfirmation(ctx context.Context, email string) error
}

// RequestConfirmRequest represents the JSON body for re-sending the
// confirmation email
// swagger:model RequestConfirmRequest
type RequestConfirmRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// RequestConfirmResponse represents the response for a confirmation request
// swagger:model RequestConfirmResponse
type RequestConfirmResponse struct {
	// Message, identical whether or not the account exists
	// default: Check your email for confirmation
	Message string `json:"message"`
}

// RequestConfirmErrorResponse represents an error response
// swagger:model RequestConfirmErrorResponse
type RequestConfirmErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewRequestConfirmHandler returns an HTTP handler that re-sends the
// confirmation email. The response does not reveal whether the account
// exists.
// @Summary Request confirmation email
// @Description Re-sends the confirmation email for an unconfirmed account.
// @Tags auth
// @Accept json
// @Produce json
// @Param requestConfirmRequest body handlers.RequestConfirmRequest true "Confirmation request"
// @Success 200 {object} handlers.RequestConfirmResponse "Confirmation email sent if applicable"
// @Failure 400 {object} handlers.RequestConfirmErrorResponse "Invalid request body"
// @Router /api/auth/request-confirm [post]
func NewRequestConfirmHandler(svc ConfirmationRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RequestConfirmRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RequestConfirmErrorResponse{Error: "Invalid request body"})
			return
		}

		err := svc.RequestConfirmation(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyConfirmed):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(RequestConfirmResponse{Message: "Email already confirmed"})
			case errors.Is(err, services.ErrUserDoesNotExist):
				// same message as success
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(RequestConfirmResponse{Message: "Check your email for confirmation"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RequestConfirmErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RequestConfirmResponse{Message: "Check your email for confirmation"})
	}
}
