package rsvp

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// UnlockKeyPrefix is the fixed key under which the gate flag is persisted,
// one entry per device.
const UnlockKeyPrefix = "rsvp_confirmed:"

const unlockedValue = "true"

// FlagStore is the minimal durable string slot the gate persists into.
type FlagStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// UnlockGate is the device-scoped boolean that reveals reception-only
// content after a positive RSVP. It is engaged at most once per device and
// never cleared; it is deliberately weak and must not be treated as
// authentication.
type UnlockGate struct {
	store FlagStore
}

// NewUnlockGate constructs the gate over a flag store.
func NewUnlockGate(store FlagStore) *UnlockGate {
	return &UnlockGate{store: store}
}

// IsUnlocked reads the persisted flag. Absent or unrecognized values read
// as locked.
func (g *UnlockGate) IsUnlocked(ctx context.Context, deviceID string) (bool, error) {
	value, ok, err := g.store.Get(ctx, UnlockKeyPrefix+deviceID)
	if err != nil {
		return false, err
	}
	return ok && value == unlockedValue, nil
}

// Engage persists the flag. There is no disengage.
func (g *UnlockGate) Engage(ctx context.Context, deviceID string) error {
	return g.store.Set(ctx, UnlockKeyPrefix+deviceID, unlockedValue)
}

type redisFlagStore struct {
	client *redis.Client
}

// NewRedisFlagStore adapts a Redis client to the FlagStore contract. Keys
// are written without expiry; the flag outlives repeat visits until the
// store is cleared externally.
func NewRedisFlagStore(client *redis.Client) FlagStore {
	return &redisFlagStore{client: client}
}

func (s *redisFlagStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *redisFlagStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
