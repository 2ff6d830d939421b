package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/rsvp-service/internal/domain"
	"github.com/spec-kit/rsvp-service/internal/events"
	"github.com/spec-kit/rsvp-service/internal/repository"
	"github.com/spec-kit/rsvp-service/internal/rsvp"
)

// ErrSubmissionInFlight rejects a second submit while one is outstanding
// for the same device, so double-clicks cannot create duplicate records.
var ErrSubmissionInFlight = errors.New("service: submission already in progress")

// RSVPService runs the guest-facing wizard flow: per-device session state,
// the single-submission guard, the store insert and the unlock gate.
type RSVPService struct {
	sessions   rsvp.SessionStore
	guests     repository.GuestRepository
	gate       *rsvp.UnlockGate
	dispatcher events.Dispatcher

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// RSVPDependencies bundles collaborators for the RSVP service.
type RSVPDependencies struct {
	Sessions   rsvp.SessionStore
	GuestRepo  repository.GuestRepository
	Gate       *rsvp.UnlockGate
	Dispatcher events.Dispatcher
}

// NewRSVPService constructs the service.
func NewRSVPService(deps RSVPDependencies) *RSVPService {
	return &RSVPService{
		sessions:   deps.Sessions,
		guests:     deps.GuestRepo,
		gate:       deps.Gate,
		dispatcher: deps.Dispatcher,
		inFlight:   make(map[string]struct{}),
	}
}

// Start begins a fresh wizard for the device, replacing any prior session.
func (s *RSVPService) Start(ctx context.Context, deviceID string) (rsvp.State, error) {
	state := rsvp.NewState()
	if err := s.sessions.Save(ctx, deviceID, state); err != nil {
		return rsvp.State{}, err
	}
	return state, nil
}

// Current returns the device's wizard state, starting a fresh one when none
// exists yet.
func (s *RSVPService) Current(ctx context.Context, deviceID string) (rsvp.State, error) {
	state, err := s.sessions.Load(ctx, deviceID)
	if errors.Is(err, rsvp.ErrSessionNotFound) {
		return s.Start(ctx, deviceID)
	}
	if err != nil {
		return rsvp.State{}, err
	}
	return state, nil
}

// Advance merges the submitted fields and moves one step forward. On a
// guard failure the stored state stays exactly as it was.
func (s *RSVPService) Advance(ctx context.Context, deviceID string, fields rsvp.Fields) (rsvp.State, error) {
	state, err := s.Current(ctx, deviceID)
	if err != nil {
		return rsvp.State{}, err
	}
	applied, err := state.Apply(fields)
	if err != nil {
		return state, err
	}
	next, err := applied.Next()
	if err != nil {
		return state, err
	}
	if err := s.sessions.Save(ctx, deviceID, next); err != nil {
		return state, err
	}
	return next, nil
}

// Back steps backwards, preserving entered values.
func (s *RSVPService) Back(ctx context.Context, deviceID string) (rsvp.State, error) {
	state, err := s.Current(ctx, deviceID)
	if err != nil {
		return rsvp.State{}, err
	}
	prev, err := state.Back()
	if err != nil {
		return state, err
	}
	if err := s.sessions.Save(ctx, deviceID, prev); err != nil {
		return state, err
	}
	return prev, nil
}

// Submit inserts the accumulated answer as one guest record. It holds at
// most one in-flight submission per device; on store failure the wizard
// stays in the message step with nothing committed. A successful yes
// engages the unlock gate for the device.
func (s *RSVPService) Submit(ctx context.Context, deviceID string, fields rsvp.Fields) (rsvp.State, *domain.Guest, error) {
	if !s.beginSubmit(deviceID) {
		return rsvp.State{}, nil, ErrSubmissionInFlight
	}
	defer s.endSubmit(deviceID)

	state, err := s.Current(ctx, deviceID)
	if err != nil {
		return rsvp.State{}, nil, err
	}
	applied, err := state.Apply(fields)
	if err != nil {
		return state, nil, err
	}
	input, err := applied.Payload()
	if err != nil {
		return state, nil, err
	}

	guest, err := s.guests.Insert(ctx, input)
	if err != nil {
		return state, nil, err
	}

	if guest.Status == domain.GuestStatusYes {
		// The record is committed; a gate write failure must not fail
		// the submission the guest already made.
		_ = s.gate.Engage(ctx, deviceID)
	}

	done, err := applied.Complete()
	if err != nil {
		return state, guest, err
	}
	if err := s.sessions.Save(ctx, deviceID, done); err != nil {
		return done, guest, nil
	}

	s.publish(ctx, events.Event{
		Type:    events.EventGuestCreated,
		GuestID: guest.ID,
		Payload: events.GuestCreatedPayload{
			Name:           guest.Name,
			Status:         guest.Status,
			PartySize:      guest.PartySize,
			ResponseSource: guest.ResponseSource,
		},
	})
	return done, guest, nil
}

// Unlocked reports whether the device's unlock gate has been engaged.
func (s *RSVPService) Unlocked(ctx context.Context, deviceID string) (bool, error) {
	return s.gate.IsUnlocked(ctx, deviceID)
}

func (s *RSVPService) beginSubmit(deviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[deviceID]; busy {
		return false
	}
	s.inFlight[deviceID] = struct{}{}
	return true
}

func (s *RSVPService) endSubmit(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, deviceID)
}

func (s *RSVPService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
