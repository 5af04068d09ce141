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

const contactColumns = `contact_id, owner_id, first_name, last_name, email, phone_number, birthday, additional_info, created_at, updated_at`

// ContactReadRepository handles contact read operations.
// Every lookup is scoped to the owning user, so a contact owned by someone
// else is indistinguishable from an absent one.
type ContactReadRepository struct {
	db *sqlx.DB
}

func NewContactReadRepository(db *sqlx.DB) *ContactReadRepository {
	return &ContactReadRepository{db: db}
}

// GetByID returns the owned contact with the given id, or nil when absent.
func (r *ContactReadRepository) GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*models.ContactDB, error) {
	const query = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE contact_id = $1 AND owner_id = $2
		LIMIT 1
	`

	var contact models.ContactDB
	err := r.db.GetContext(ctx, &contact, query, contactID, ownerID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{contactID, ownerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &contact, nil
}

// GetByEmail returns the contact with the given email regardless of owner,
// or nil when absent. Used for the global uniqueness early check.
func (r *ContactReadRepository) GetByEmail(ctx context.Context, email string) (*models.ContactDB, error) {
	const query = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE email = $1
		LIMIT 1
	`

	var contact models.ContactDB
	err := r.db.GetContext(ctx, &contact, query, email)

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

	return &contact, nil
}

// List returns a page of owned contacts. Ordered by creation time and id
// so that pagination is deterministic.
func (r *ContactReadRepository) List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]models.ContactDB, error) {
	const query = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner_id = $1
		ORDER BY created_at, contact_id
		OFFSET $2 LIMIT $3
	`

	var contacts []models.ContactDB
	err := r.db.SelectContext(ctx, &contacts, query, ownerID, skip, limit)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, skip, limit},
		"result", len(contacts),
		"error", err,
	)

	return contacts, err
}

// ListAll returns every owned contact, ordered like List.
func (r *ContactReadRepository) ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.ContactDB, error) {
	const query = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner_id = $1
		ORDER BY created_at, contact_id
	`

	var contacts []models.ContactDB
	err := r.db.SelectContext(ctx, &contacts, query, ownerID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", len(contacts),
		"error", err,
	)

	return contacts, err
}

// Search returns owned contacts whose first name, last name or email
// contains the query, case-insensitively.
func (r *ContactReadRepository) Search(ctx context.Context, ownerID uuid.UUID, search string) ([]models.ContactDB, error) {
	const query = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner_id = $1
		  AND (first_name ILIKE '%' || $2 || '%'
		    OR last_name ILIKE '%' || $2 || '%'
		    OR email ILIKE '%' || $2 || '%')
		ORDER BY created_at, contact_id
	`

	var contacts []models.ContactDB
	err := r.db.SelectContext(ctx, &contacts, query, ownerID, search)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, search},
		"result", len(contacts),
		"error", err,
	)

	return contacts, err
}

// ContactWriteRepository handles contact write operations
type ContactWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewContactWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ContactWriteRepository {
	return &ContactWriteRepository{db: db, txGetter: txGetter}
}

func (r *ContactWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new contact owned by ownerID and returns the persisted row.
func (r *ContactWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, contact models.ContactDB) (*models.ContactDB, error) {
	query := `
		INSERT INTO contacts (owner_id, first_name, last_name, email, phone_number, birthday, additional_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + contactColumns + `
	`
	args := []any{ownerID, contact.FirstName, contact.LastName, contact.Email, contact.PhoneNumber, contact.Birthday, contact.AdditionalInfo}

	var saved models.ContactDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, contact.Email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Update overwrites all mutable fields of an owned contact and returns the
// updated row, or nil when no owned contact matches.
func (r *ContactWriteRepository) Update(ctx context.Context, ownerID uuid.UUID, contact models.ContactDB) (*models.ContactDB, error) {
	query := `
		UPDATE contacts
		SET first_name = $3, last_name = $4, email = $5, phone_number = $6,
		    birthday = $7, additional_info = $8, updated_at = NOW()
		WHERE contact_id = $1 AND owner_id = $2
		RETURNING ` + contactColumns + `
	`
	args := []any{contact.ContactID, ownerID, contact.FirstName, contact.LastName, contact.Email, contact.PhoneNumber, contact.Birthday, contact.AdditionalInfo}

	var updated models.ContactDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{contact.ContactID, ownerID, contact.Email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes an owned contact. Returns sql.ErrNoRows when no owned
// contact matches.
func (r *ContactWriteRepository) Delete(ctx context.Context, ownerID, contactID uuid.UUID) error {
	query := `
		DELETE FROM contacts
		WHERE contact_id = $1 AND owner_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, contactID, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{contactID, ownerID},
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
