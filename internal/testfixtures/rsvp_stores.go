package testfixtures

import (
	"context"
	"sync"

	"github.com/spec-kit/rsvp-service/internal/rsvp"
)

// MemorySessionStore holds wizard sessions in a map.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]rsvp.State

	// SaveErr, when set, is returned by Save instead of storing.
	SaveErr error
}

// NewMemorySessionStore returns an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]rsvp.State)}
}

func (s *MemorySessionStore) Load(_ context.Context, deviceID string) (rsvp.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[deviceID]
	if !ok {
		return rsvp.State{}, rsvp.ErrSessionNotFound
	}
	return state, nil
}

func (s *MemorySessionStore) Save(_ context.Context, deviceID string, state rsvp.State) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[deviceID] = state
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, deviceID)
	return nil
}

// MemoryFlagStore is an in-memory unlock flag slot.
type MemoryFlagStore struct {
	mu    sync.Mutex
	flags map[string]string

	// SetErr, when set, is returned by Set instead of storing.
	SetErr error
}

// NewMemoryFlagStore returns an empty flag store.
func NewMemoryFlagStore() *MemoryFlagStore {
	return &MemoryFlagStore{flags: make(map[string]string)}
}

func (s *MemoryFlagStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.flags[key]
	return value, ok, nil
}

func (s *MemoryFlagStore) Set(_ context.Context, key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = value
	return nil
}
