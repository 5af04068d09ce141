package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/ekovalova/contactbook/internal/jwt"
	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
)

// maxAvatarSize caps avatar uploads at 5 MiB.
const maxAvatarSize = 5 << 20

// AvatarTokener defines only the methods needed by this handler.
type AvatarTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string, expected jwt.Scope) (*jwt.Claims, error)
}

// AvatarUpdater defines the interface that the service must implement.
type AvatarUpdater interface {
	UpdateAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*models.UserDB, error)
}

// AvatarErrorResponse represents an error response for avatar upload
// swagger:model AvatarErrorResponse
type AvatarErrorResponse struct {
	// Error message
	// default: Missing file
	Error string `json:"error"`
}

// NewUpdateAvatarHandler returns an HTTP handler that uploads a new
// avatar image and stores its URL on the user.
// @Summary Update avatar
// @Description Accepts a multipart form with a "file" part, uploads it to object storage and saves the resulting URL.
// @Tags users
// @Accept mpfd
// @Produce json
// @Param file formData file true "Avatar image"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.AvatarErrorResponse "Missing or oversized file"
// @Failure 401 {object} handlers.AvatarErrorResponse "Unauthorized"
// @Router /api/users/avatar [patch]
// @Security BearerAuth
func NewUpdateAvatarHandler(svc AvatarUpdater, tokenGetter AvatarTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr, jwt.ScopeAccess)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
			logger.Log.Warnw("failed to parse multipart form", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "Invalid multipart form"})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "Missing file"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize+1))
		if err != nil {
			logger.Log.Errorw("failed to read avatar file", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "Failed to read file"})
			return
		}
		if len(data) > maxAvatarSize {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "File too large"})
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		user, err := svc.UpdateAvatar(ctx, claims.UserID, header.Filename, contentType, data)
		if err != nil {
			logger.Log.Errorw("failed to update avatar", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
