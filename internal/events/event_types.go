package events

import (
	"time"

	"github.com/spec-kit/rsvp-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventGuestCreated EventType = "guest_created"
	EventGuestUpdated EventType = "guest_updated"
	EventGuestDeleted EventType = "guest_deleted"
)

// Event represents a guest record change emitted after a store write.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	GuestID   string      `json:"guest_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// GuestCreatedPayload payload.
type GuestCreatedPayload struct {
	Name           string                `json:"name"`
	Status         domain.GuestStatus    `json:"status"`
	PartySize      int                   `json:"party_size"`
	ResponseSource domain.ResponseSource `json:"response_source"`
}

// GuestUpdatedPayload payload.
type GuestUpdatedPayload struct {
	OldStatus domain.GuestStatus `json:"old_status"`
	NewStatus domain.GuestStatus `json:"new_status"`
	NotesSet  bool               `json:"notes_set"`
}

// GuestDeletedPayload payload.
type GuestDeletedPayload struct {
	Name string `json:"name"`
}
