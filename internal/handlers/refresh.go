package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ekovalova/contactbook/internal/logger"
)

// RefreshTokener defines only the methods needed by this handler.
type RefreshTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Refresher defines the interface that the service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (newAccess, newRefresh string, err error)
}

// RefreshErrorResponse represents an error response for token refresh
// swagger:model RefreshErrorResponse
type RefreshErrorResponse struct {
	// Error message
	// default: Invalid or expired refresh token
	Error string `json:"error"`
}

// NewRefreshHandler returns an HTTP handler that rotates a refresh token
// into a new token pair.
// @Summary Refresh token pair
// @Description Exchanges a valid bearer refresh token for a new access/refresh pair. The previous refresh token is invalidated.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.TokenPairResponse "New token pair returned"
// @Failure 401 {object} handlers.RefreshErrorResponse "Invalid or expired refresh token"
// @Router /api/auth/refresh [get]
// @Security BearerAuth
func NewRefreshHandler(svc Refresher, tokenGetter RefreshTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RefreshErrorResponse{Error: "Invalid or expired refresh token"})
			return
		}

		access, refresh, err := svc.Refresh(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to refresh token pair", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RefreshErrorResponse{Error: "Invalid or expired refresh token"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenPairResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "bearer",
		})
	}
}
