package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ekovalova/contactbook/internal/models"
)

func newTestContact(email string) models.ContactDB {
	return models.ContactDB{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "1234567890",
		Birthday:    models.NewDate(1990, time.January, 1),
	}
}

func TestContactWriteRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	writeRepo := NewContactWriteRepository(db, nil)
	readRepo := NewContactReadRepository(db)
	ctx := context.Background()

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com", "hashed")
	assert.NoError(t, err)
	bob, err := userRepo.Save(ctx, "bob", "bob@example.com", "hashed")
	assert.NoError(t, err)

	saved, err := writeRepo.Save(ctx, alice.UserID, newTestContact("john@x.com"))
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ContactID)
	assert.Equal(t, alice.UserID, saved.OwnerID)
	assert.Equal(t, "john@x.com", saved.Email)
	assert.Equal(t, "1990-01-01", saved.Birthday.String())

	// Owner sees it
	got, err := readRepo.GetByID(ctx, alice.UserID, saved.ContactID)
	assert.NoError(t, err)
	assert.NotNil(t, got)

	// Another user does not, even with the right id
	got, err = readRepo.GetByID(ctx, bob.UserID, saved.ContactID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Global email lookup crosses owners
	byEmail, err := readRepo.GetByEmail(ctx, "john@x.com")
	assert.NoError(t, err)
	assert.NotNil(t, byEmail)

	// Global uniqueness: same email under a different owner is rejected
	_, err = writeRepo.Save(ctx, bob.UserID, newTestContact("john@x.com"))
	assert.Error(t, err)
}

func TestContactReadRepository_ListPagination(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	writeRepo := NewContactWriteRepository(db, nil)
	readRepo := NewContactReadRepository(db)
	ctx := context.Background()

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com", "hashed")
	assert.NoError(t, err)

	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"}
	for _, email := range emails {
		_, err := writeRepo.Save(ctx, alice.UserID, newTestContact(email))
		assert.NoError(t, err)
	}

	page1, err := readRepo.List(ctx, alice.UserID, 0, 2)
	assert.NoError(t, err)
	assert.Len(t, page1, 2)

	page2, err := readRepo.List(ctx, alice.UserID, 2, 2)
	assert.NoError(t, err)
	assert.Len(t, page2, 2)

	page3, err := readRepo.List(ctx, alice.UserID, 4, 2)
	assert.NoError(t, err)
	assert.Len(t, page3, 1)

	// Deterministic ordering: pages never overlap
	seen := map[uuid.UUID]bool{}
	for _, c := range append(append(page1, page2...), page3...) {
		assert.False(t, seen[c.ContactID])
		seen[c.ContactID] = true
	}

	all, err := readRepo.ListAll(ctx, alice.UserID)
	assert.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestContactReadRepository_Search(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	writeRepo := NewContactWriteRepository(db, nil)
	readRepo := NewContactReadRepository(db)
	ctx := context.Background()

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com", "hashed")
	assert.NoError(t, err)
	bob, err := userRepo.Save(ctx, "bob", "bob@example.com", "hashed")
	assert.NoError(t, err)

	john := newTestContact("john@x.com")
	_, err = writeRepo.Save(ctx, alice.UserID, john)
	assert.NoError(t, err)

	jane := newTestContact("jane@y.com")
	jane.FirstName = "Jane"
	jane.LastName = "Smith"
	_, err = writeRepo.Save(ctx, alice.UserID, jane)
	assert.NoError(t, err)

	// Bob's contact must never appear in Alice's search
	other := newTestContact("johnny@z.com")
	_, err = writeRepo.Save(ctx, bob.UserID, other)
	assert.NoError(t, err)

	results, err := readRepo.Search(ctx, alice.UserID, "JOHN")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "john@x.com", results[0].Email)

	results, err = readRepo.Search(ctx, alice.UserID, "smith")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Jane", results[0].FirstName)

	results, err = readRepo.Search(ctx, alice.UserID, "@")
	assert.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestContactWriteRepository_UpdateAndDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db, nil)
	writeRepo := NewContactWriteRepository(db, nil)
	readRepo := NewContactReadRepository(db)
	ctx := context.Background()

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com", "hashed")
	assert.NoError(t, err)
	bob, err := userRepo.Save(ctx, "bob", "bob@example.com", "hashed")
	assert.NoError(t, err)

	saved, err := writeRepo.Save(ctx, alice.UserID, newTestContact("john@x.com"))
	assert.NoError(t, err)

	saved.PhoneNumber = "0987654321"
	updated, err := writeRepo.Update(ctx, alice.UserID, *saved)
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "0987654321", updated.PhoneNumber)
	assert.Equal(t, "john@x.com", updated.Email)

	// Foreign owner cannot update
	foreign, err := writeRepo.Update(ctx, bob.UserID, *saved)
	assert.NoError(t, err)
	assert.Nil(t, foreign)

	// Foreign owner cannot delete
	err = writeRepo.Delete(ctx, bob.UserID, saved.ContactID)
	assert.Error(t, err)

	err = writeRepo.Delete(ctx, alice.UserID, saved.ContactID)
	assert.NoError(t, err)

	got, err := readRepo.GetByID(ctx, alice.UserID, saved.ContactID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again reports not found
	err = writeRepo.Delete(ctx, alice.UserID, saved.ContactID)
	assert.Error(t, err)
}
