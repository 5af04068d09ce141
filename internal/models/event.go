package models

// Contact audit event types
const (
	ContactCreated = "contact_created"
	ContactUpdated = "contact_updated"
	ContactDeleted = "contact_deleted"
)

// ContactEvent represents an audit record published after a contact mutation.
type ContactEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the mutation happened.
	Operation string `json:"operation"`  // Operation is one of the contact event types above.
	OwnerID   string `json:"owner_id"`   // OwnerID is the identifier of the user who performed the mutation.
	ContactID string `json:"contact_id"` // ContactID is the identifier of the affected contact.
	Email     string `json:"email"`      // Email is the contact email at the time of the mutation.
}
