package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/services"
)

// EmailConfirmer defines the interface that the service must implement.
type EmailConfirmer interface {
	ConfirmEmail(ctx context.Context, token string) error
}

// ConfirmEmailResponse represents a successful confirmation response
// swagger:model ConfirmEmailResponse
type ConfirmEmailResponse struct {
	// Success message
	// default: Email confirmed
	Message string `json:"message"`
}

// ConfirmEmailErrorResponse represents an error response for confirmation
// swagger:model ConfirmEmailErrorResponse
type ConfirmEmailErrorResponse struct {
	// Error message
	// default: Invalid or expired confirmation token
	Error string `json:"error"`
}

// NewConfirmEmailHandler returns an HTTP handler that confirms the email
// embedded in the confirmation token.
// @Summary Confirm email
// @Description Marks the account email as confirmed using the emailed token.
// @Tags auth
// @Produce json
// @Param token path string true "Confirmation token"
// @Success 200 {object} handlers.ConfirmEmailResponse "Email confirmed"
// @Failure 400 {object} handlers.ConfirmEmailErrorResponse "Invalid or expired confirmation token"
// @Failure 404 {object} handlers.ConfirmEmailErrorResponse "User not found"
// @Router /api/auth/confirm/{token} [get]
func NewConfirmEmailHandler(svc EmailConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		err := svc.ConfirmEmail(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyConfirmed):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(ConfirmEmailResponse{Message: "Email already confirmed"})
			case errors.Is(err, services.ErrInvalidToken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConfirmEmailErrorResponse{Error: "Invalid or expired confirmation token"})
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ConfirmEmailErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConfirmEmailErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfirmEmailResponse{Message: "Email confirmed"})
	}
}
