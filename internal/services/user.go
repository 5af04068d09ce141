package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
)

// ErrAvatarStoreNotConfigured is returned when no object storage backend
// was wired at startup.
var ErrAvatarStoreNotConfigured = errors.New("avatar storage not configured")

// AvatarStore uploads avatar images and returns their public URL.
type AvatarStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// UserService handles profile mutations.
type UserService struct {
	reader UserReader
	writer UserWriter
	store  AvatarStore
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, store AvatarStore) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		store:  store,
	}
}

// UpdateAvatar uploads the image and persists the returned URL on the user.
func (svc *UserService) UpdateAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (*models.UserDB, error) {
	if svc.store == nil {
		logger.Log.Warnw("avatar store not configured", "user_id", userID)
		return nil, ErrAvatarStoreNotConfigured
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	key := "avatars/" + userID.String() + "/" + filename
	url, err := svc.store.Upload(ctx, key, data, contentType)
	if err != nil {
		logger.Log.Errorw("failed to upload avatar", "user_id", userID, "err", err)
		return nil, err
	}

	updated, err := svc.writer.SetAvatar(ctx, user.Email, url)
	if err != nil {
		logger.Log.Errorw("failed to persist avatar url", "user_id", userID, "err", err)
		return nil, err
	}

	return updated, nil
}
