package rsvp

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type stubFlagStore struct {
	mu     sync.Mutex
	flags  map[string]string
	getErr error
}

func newStubFlagStore() *stubFlagStore {
	return &stubFlagStore{flags: make(map[string]string)}
}

func (s *stubFlagStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.flags[key]
	return value, ok, nil
}

func (s *stubFlagStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = value
	return nil
}

func TestUnlockGate(t *testing.T) {
	ctx := context.Background()

	t.Run("locked until engaged", func(t *testing.T) {
		gate := NewUnlockGate(newStubFlagStore())
		unlocked, err := gate.IsUnlocked(ctx, "device-1")
		if err != nil {
			t.Fatalf("IsUnlocked() error = %v", err)
		}
		if unlocked {
			t.Error("fresh device should be locked")
		}
	})

	t.Run("engage unlocks only that device", func(t *testing.T) {
		store := newStubFlagStore()
		gate := NewUnlockGate(store)
		if err := gate.Engage(ctx, "device-1"); err != nil {
			t.Fatalf("Engage() error = %v", err)
		}

		unlocked, err := gate.IsUnlocked(ctx, "device-1")
		if err != nil || !unlocked {
			t.Errorf("IsUnlocked(device-1) = %v, %v, want true", unlocked, err)
		}
		other, err := gate.IsUnlocked(ctx, "device-2")
		if err != nil || other {
			t.Errorf("IsUnlocked(device-2) = %v, %v, want false", other, err)
		}
		if _, ok := store.flags[UnlockKeyPrefix+"device-1"]; !ok {
			t.Errorf("flag not written under %q", UnlockKeyPrefix+"device-1")
		}
	})

	t.Run("unrecognized stored value reads as locked", func(t *testing.T) {
		store := newStubFlagStore()
		store.flags[UnlockKeyPrefix+"device-1"] = "yes"
		gate := NewUnlockGate(store)
		unlocked, err := gate.IsUnlocked(ctx, "device-1")
		if err != nil {
			t.Fatalf("IsUnlocked() error = %v", err)
		}
		if unlocked {
			t.Error("non-true value should read as locked")
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := newStubFlagStore()
		store.getErr = errors.New("redis down")
		gate := NewUnlockGate(store)
		if _, err := gate.IsUnlocked(ctx, "device-1"); err == nil {
			t.Error("IsUnlocked() error = nil, want store error")
		}
	})
}
