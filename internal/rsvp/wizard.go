// Package rsvp holds the guest-facing submission flow: the step wizard, the
// per-device session it lives in, and the unlock gate engaged by a positive
// answer.
package rsvp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spec-kit/rsvp-service/internal/domain"
)

// Step identifies one wizard screen. Steps are strictly ordered and cannot
// be skipped.
type Step string

const (
	StepAttendance   Step = "attendance"
	StepIdentity     Step = "identity"
	StepMessage      Step = "message"
	StepConfirmation Step = "confirmation"
)

const (
	// MinPartySize and MaxPartySize bound the fixed selection range.
	MinPartySize = 1
	MaxPartySize = 5
)

var (
	// ErrFlowFinished is returned for any mutation after confirmation.
	ErrFlowFinished = errors.New("rsvp: flow already confirmed")
	// ErrAtFirstStep is returned when going back from the first step.
	ErrAtFirstStep = errors.New("rsvp: already at first step")
	// ErrNotAtMessage is returned when submitting from any step but Message.
	ErrNotAtMessage = errors.New("rsvp: submission only allowed from the message step")
)

// ValidationError blocks a forward transition and names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rsvp: %s %s", e.Field, e.Reason)
}

// State is the tagged wizard state. It accumulates the collected fields;
// transitions return a new value and never mutate the receiver.
type State struct {
	Step      Step               `json:"step"`
	Attending domain.GuestStatus `json:"attending,omitempty"`
	Name      string             `json:"name,omitempty"`
	Email     string             `json:"email,omitempty"`
	Phone     string             `json:"phone,omitempty"`
	PartySize int                `json:"party_size"`
	Message   string             `json:"message,omitempty"`
}

// NewState starts a fresh wizard at the attendance step.
func NewState() State {
	return State{Step: StepAttendance, PartySize: MinPartySize}
}

// Fields carries a partial field update from the client. Nil fields are
// left as previously entered.
type Fields struct {
	Attending *domain.GuestStatus `json:"attending,omitempty"`
	Name      *string             `json:"name,omitempty"`
	Email     *string             `json:"email,omitempty"`
	Phone     *string             `json:"phone,omitempty"`
	PartySize *int                `json:"party_size,omitempty"`
	Message   *string             `json:"message,omitempty"`
}

// Apply merges the update into the state. Values survive backward
// transitions, so a guest never re-types what they already entered.
func (s State) Apply(f Fields) (State, error) {
	if s.Step == StepConfirmation {
		return s, ErrFlowFinished
	}
	if f.Attending != nil {
		if *f.Attending != "" && !f.Attending.Valid() {
			return s, &ValidationError{Field: "attending", Reason: "must be yes, no or maybe"}
		}
		s.Attending = *f.Attending
	}
	if f.Name != nil {
		s.Name = *f.Name
	}
	if f.Email != nil {
		s.Email = *f.Email
	}
	if f.Phone != nil {
		s.Phone = *f.Phone
	}
	if f.PartySize != nil {
		if *f.PartySize < MinPartySize || *f.PartySize > MaxPartySize {
			return s, &ValidationError{
				Field:  "party_size",
				Reason: fmt.Sprintf("must be between %d and %d", MinPartySize, MaxPartySize),
			}
		}
		s.PartySize = *f.PartySize
	}
	if f.Message != nil {
		s.Message = *f.Message
	}
	return s, nil
}

// Next advances one step after checking the guard for the current step.
// The returned error, when a *ValidationError, tells the caller which field
// blocked the transition; the state is unchanged in that case.
func (s State) Next() (State, error) {
	switch s.Step {
	case StepAttendance:
		if s.Attending == "" {
			return s, &ValidationError{Field: "attending", Reason: "is required"}
		}
		s.Step = StepIdentity
		return s, nil
	case StepIdentity:
		if strings.TrimSpace(s.Name) == "" {
			return s, &ValidationError{Field: "name", Reason: "is required"}
		}
		s.Step = StepMessage
		return s, nil
	case StepMessage:
		// The message step completes through Complete after a
		// successful store insert, never through Next.
		return s, ErrNotAtMessage
	default:
		return s, ErrFlowFinished
	}
}

// Back returns to the previous step, preserving entered values. Always
// permitted except from the first and terminal steps.
func (s State) Back() (State, error) {
	switch s.Step {
	case StepAttendance:
		return s, ErrAtFirstStep
	case StepIdentity:
		s.Step = StepAttendance
		return s, nil
	case StepMessage:
		s.Step = StepIdentity
		return s, nil
	default:
		return s, ErrFlowFinished
	}
}

// Payload assembles the guest record for submission. Only valid from the
// message step; validation failures never reach the store.
func (s State) Payload() (domain.GuestInput, error) {
	if s.Step != StepMessage {
		return domain.GuestInput{}, ErrNotAtMessage
	}
	input := domain.GuestInput{
		Name:                strings.TrimSpace(s.Name),
		Status:              s.Attending,
		PartySize:           s.PartySize,
		GoingToReception:    s.Attending == domain.GuestStatusYes,
		DietaryRestrictions: ptr(""),
		ResponseSource:      domain.ResponseSourceWeb,
	}
	if s.Email != "" {
		input.Email = ptr(s.Email)
	}
	if s.Phone != "" {
		input.Phone = ptr(s.Phone)
	}
	if s.Message != "" {
		input.Message = ptr(s.Message)
	}
	return input, input.Validate()
}

// Complete moves the flow into the terminal confirmation step. Called only
// after the store accepted the submission.
func (s State) Complete() (State, error) {
	if s.Step != StepMessage {
		return s, ErrNotAtMessage
	}
	s.Step = StepConfirmation
	return s, nil
}

func ptr[T any](v T) *T {
	return &v
}
