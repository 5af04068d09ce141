package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
)

const userColumns = `user_id, username, email, password_hash, avatar, refresh_token, confirmed, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when absent.
// Email is the login key, so the lookup is case-insensitive.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(email) = LOWER($1)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ExistsByUsernameOrEmail reports whether any user already holds the given
// username or email. Used as the register-time early conflict check.
func (r *UserReadRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE username = $1 OR LOWER(email) = LOWER($2)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new unconfirmed user and returns the persisted row.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (username, email, password_hash, confirmed, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, NOW(), NOW())
		RETURNING ` + userColumns + `
	`
	args := []any{username, email, passwordHash}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SetRefreshToken overwrites the stored refresh token. A nil token clears
// it (logout).
func (r *UserWriteRepository) SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error {
	query := `
		UPDATE users
		SET refresh_token = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, token)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetConfirmed marks the user with the given email as confirmed.
// Returns sql.ErrNoRows when no such user exists.
func (r *UserWriteRepository) SetConfirmed(ctx context.Context, email string) error {
	query := `
		UPDATE users
		SET confirmed = TRUE, updated_at = NOW()
		WHERE LOWER(email) = LOWER($1)
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetAvatar overwrites the avatar URL and returns the updated row.
func (r *UserWriteRepository) SetAvatar(ctx context.Context, email, url string) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET avatar = $2, updated_at = NOW()
		WHERE LOWER(email) = LOWER($1)
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, email, url)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, url},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
