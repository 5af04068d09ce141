package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ekovalova/contactbook/internal/jwt"
	"github.com/ekovalova/contactbook/internal/logger"
)

// LogoutTokener defines only the methods needed by this handler.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string, expected jwt.Scope) (*jwt.Claims, error)
}

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, userID uuid.UUID) error
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler that revokes the stored
// refresh token.
// @Summary Log out
// @Description Clears the stored refresh token so it can no longer be rotated.
// @Tags auth
// @Produce json
// @Success 204 "Logged out"
// @Failure 401 {object} handlers.LogoutErrorResponse "Unauthorized"
// @Router /api/auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokenGetter LogoutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LogoutErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr, jwt.ScopeAccess)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LogoutErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.Logout(ctx, claims.UserID); err != nil {
			logger.Log.Errorw("failed to log out", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LogoutErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
