package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
	"github.com/ekovalova/contactbook/internal/validation"
)

var (
	// ErrContactNotFound is returned when a contact is absent or owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrContactNotFound = errors.New("contact not found")

	// ErrContactEmailExists is returned when any contact in the system
	// already holds the email.
	ErrContactEmailExists = errors.New("a contact with this email already exists")
)

// DefaultBirthdayWindowDays is the forward-looking window for upcoming
// birthdays when none is configured.
const DefaultBirthdayWindowDays = 7

// ContactReader defines read operations for contacts, all owner-scoped
// except the global email lookup.
type ContactReader interface {
	GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*models.ContactDB, error)
	GetByEmail(ctx context.Context, email string) (*models.ContactDB, error)
	List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]models.ContactDB, error)
	ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.ContactDB, error)
	Search(ctx context.Context, ownerID uuid.UUID, search string) ([]models.ContactDB, error)
}

// ContactWriter defines write operations for contacts.
type ContactWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, contact models.ContactDB) (*models.ContactDB, error)
	Update(ctx context.Context, ownerID uuid.UUID, contact models.ContactDB) (*models.ContactDB, error)
	Delete(ctx context.Context, ownerID, contactID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ContactService handles owner-scoped contact operations and audit
// event publishing.
type ContactService struct {
	readRepo           ContactReader
	writeRepo          ContactWriter
	kafkaWriter        KafkaWriter
	birthdayWindowDays int
}

// NewContactService creates a new ContactService.
func NewContactService(readRepo ContactReader, writeRepo ContactWriter, kafkaWriter KafkaWriter, birthdayWindowDays int) *ContactService {
	if birthdayWindowDays <= 0 {
		birthdayWindowDays = DefaultBirthdayWindowDays
	}
	return &ContactService{
		readRepo:           readRepo,
		writeRepo:          writeRepo,
		kafkaWriter:        kafkaWriter,
		birthdayWindowDays: birthdayWindowDays,
	}
}

// publishEvent publishes a contact audit event to Kafka. Publish failures
// never fail the mutation that produced them.
func (s *ContactService) publishEvent(ctx context.Context, operation string, ownerID uuid.UUID, contact *models.ContactDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation)
		return
	}

	event := models.ContactEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		OwnerID:   ownerID.String(),
		ContactID: contact.ContactID.String(),
		Email:     contact.Email,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal contact event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish contact event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Contact event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

// Create validates the input and inserts a contact owned by ownerID.
func (s *ContactService) Create(ctx context.Context, ownerID uuid.UUID, input validation.ContactInput) (*models.ContactDB, error) {
	if err := validation.ValidateContact(input); err != nil {
		return nil, err
	}

	existing, err := s.readRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		logger.Log.Errorw("failed to check contact email", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrContactEmailExists
	}

	contact := models.ContactDB{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Birthday:       input.Birthday,
		AdditionalInfo: input.AdditionalInfo,
	}

	saved, err := s.writeRepo.Save(ctx, ownerID, contact)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrContactEmailExists
		}
		logger.Log.Errorw("failed to save contact", "owner_id", ownerID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.ContactCreated, ownerID, saved)

	return saved, nil
}

// List returns a page of the owner's contacts.
func (s *ContactService) List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]models.ContactDB, error) {
	contacts, err := s.readRepo.List(ctx, ownerID, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list contacts", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return contacts, nil
}

// GetByID returns the owned contact or ErrContactNotFound.
func (s *ContactService) GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*models.ContactDB, error) {
	contact, err := s.readRepo.GetByID(ctx, ownerID, contactID)
	if err != nil {
		logger.Log.Errorw("failed to get contact", "owner_id", ownerID, "contact_id", contactID, "err", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// Update applies a partial patch to an owned contact. Nil patch fields
// leave the stored values unchanged; an empty patch is a successful no-op.
func (s *ContactService) Update(ctx context.Context, ownerID, contactID uuid.UUID, patch models.ContactPatch) (*models.ContactDB, error) {
	if err := validation.ValidateContactPatch(patch); err != nil {
		return nil, err
	}

	contact, err := s.readRepo.GetByID(ctx, ownerID, contactID)
	if err != nil {
		logger.Log.Errorw("failed to get contact", "owner_id", ownerID, "contact_id", contactID, "err", err)
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if patch.Email != nil && *patch.Email != contact.Email {
		other, err := s.readRepo.GetByEmail(ctx, *patch.Email)
		if err != nil {
			logger.Log.Errorw("failed to check contact email", "err", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrContactEmailExists
		}
		contact.Email = *patch.Email
	}
	if patch.FirstName != nil {
		contact.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		contact.LastName = *patch.LastName
	}
	if patch.PhoneNumber != nil {
		contact.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Birthday != nil {
		contact.Birthday = *patch.Birthday
	}
	if patch.AdditionalInfo != nil {
		contact.AdditionalInfo = patch.AdditionalInfo
	}

	updated, err := s.writeRepo.Update(ctx, ownerID, *contact)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrContactEmailExists
		}
		logger.Log.Errorw("failed to update contact", "owner_id", ownerID, "contact_id", contactID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrContactNotFound
	}

	s.publishEvent(ctx, models.ContactUpdated, ownerID, updated)

	return updated, nil
}

// Delete removes an owned contact or returns ErrContactNotFound.
func (s *ContactService) Delete(ctx context.Context, ownerID, contactID uuid.UUID) error {
	contact, err := s.readRepo.GetByID(ctx, ownerID, contactID)
	if err != nil {
		logger.Log.Errorw("failed to get contact", "owner_id", ownerID, "contact_id", contactID, "err", err)
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}

	if err := s.writeRepo.Delete(ctx, ownerID, contactID); err != nil {
		logger.Log.Errorw("failed to delete contact", "owner_id", ownerID, "contact_id", contactID, "err", err)
		return err
	}

	s.publishEvent(ctx, models.ContactDeleted, ownerID, contact)

	return nil
}

// Search returns owned contacts matching the query case-insensitively
// against first name, last name or email.
func (s *ContactService) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]models.ContactDB, error) {
	contacts, err := s.readRepo.Search(ctx, ownerID, query)
	if err != nil {
		logger.Log.Errorw("failed to search contacts", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return contacts, nil
}

// UpcomingBirthdays returns owned contacts whose birthday falls within the
// configured forward-looking window from today, compared on month and day
// only so the birth year is irrelevant.
func (s *ContactService) UpcomingBirthdays(ctx context.Context, ownerID uuid.UUID) ([]models.ContactDB, error) {
	contacts, err := s.readRepo.ListAll(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list contacts", "owner_id", ownerID, "err", err)
		return nil, err
	}

	today := time.Now().UTC()
	upcoming := make([]models.ContactDB, 0)
	for _, c := range contacts {
		if birthdayInWindow(today, c.Birthday.Time, s.birthdayWindowDays) {
			upcoming = append(upcoming, c)
		}
	}

	return upcoming, nil
}

// birthdayInWindow reports whether the month/day of birthday falls within
// [today, today+windowDays]. Walking day by day handles the year-end
// wraparound (a Dec 28 window of 7 days includes early January) and leap
// days for free.
func birthdayInWindow(today, birthday time.Time, windowDays int) bool {
	for i := 0; i <= windowDays; i++ {
		day := today.AddDate(0, 0, i)
		if day.Month() == birthday.Month() && day.Day() == birthday.Day() {
			return true
		}
	}
	return false
}
