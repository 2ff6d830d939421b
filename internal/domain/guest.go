package domain

import (
	"strings"
	"time"
)

// GuestStatus enumerates attendance answers.
type GuestStatus string

const (
	GuestStatusYes   GuestStatus = "yes"
	GuestStatusNo    GuestStatus = "no"
	GuestStatusMaybe GuestStatus = "maybe"
)

// Valid reports whether the status is one of the three known answers.
func (s GuestStatus) Valid() bool {
	switch s {
	case GuestStatusYes, GuestStatusNo, GuestStatusMaybe:
		return true
	}
	return false
}

// ResponseSource tags how an RSVP entered the system.
type ResponseSource string

const (
	ResponseSourceWeb    ResponseSource = "web"
	ResponseSourcePhone  ResponseSource = "phone"
	ResponseSourceManual ResponseSource = "manual"
)

// Valid reports whether the source is a known provenance tag.
func (s ResponseSource) Valid() bool {
	switch s {
	case ResponseSourceWeb, ResponseSourcePhone, ResponseSourceManual:
		return true
	}
	return false
}

// Guest is one RSVP submission. Append-only except for status, admin notes
// and timestamps, which administrators may change.
type Guest struct {
	ID                  string
	Name                string
	Email               *string
	Phone               *string
	Status              GuestStatus
	PartySize           int
	GoingToReception    bool
	DietaryRestrictions *string
	Message             *string
	AdminNotes          *string
	ResponseSource      ResponseSource
	ConfirmedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// GuestInput carries the fields a caller supplies when creating a guest.
// ID and CreatedAt are store-assigned.
type GuestInput struct {
	Name                string
	Email               *string
	Phone               *string
	Status              GuestStatus
	PartySize           int
	GoingToReception    bool
	DietaryRestrictions *string
	Message             *string
	ResponseSource      ResponseSource
}

// Validate checks the submission invariants before it reaches the store.
func (in GuestInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if !in.Status.Valid() {
		return ErrInvalidStatus
	}
	if in.PartySize < 1 {
		return ErrInvalidPartySize
	}
	if !in.ResponseSource.Valid() {
		return ErrInvalidSource
	}
	return nil
}

// GuestUpdate describes the administrator-editable subset of a guest.
// Nil fields are left untouched.
type GuestUpdate struct {
	Status     *GuestStatus
	AdminNotes *string
}
