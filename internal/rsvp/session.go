package rsvp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "rsvp:session:"
	defaultSessionTTL = 24 * time.Hour
)

// ErrSessionNotFound is returned when no wizard session exists for a device.
var ErrSessionNotFound = errors.New("rsvp: session not found")

// SessionStore persists wizard state between requests, keyed by the opaque
// device id each browser carries.
type SessionStore interface {
	Load(ctx context.Context, deviceID string) (State, error)
	Save(ctx context.Context, deviceID string, state State) error
	Delete(ctx context.Context, deviceID string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore returns a Redis-backed session store. A non-positive ttl
// falls back to the default.
func NewSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Load(ctx context.Context, deviceID string) (State, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+deviceID).Result()
	if err == redis.Nil {
		return State{}, ErrSessionNotFound
	}
	if err != nil {
		return State{}, err
	}
	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// A corrupt session is unusable; treat it as absent so the
		// guest can start over.
		return State{}, ErrSessionNotFound
	}
	return state, nil
}

func (s *redisSessionStore) Save(ctx context.Context, deviceID string, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+deviceID, raw, s.ttl).Err()
}

func (s *redisSessionStore) Delete(ctx context.Context, deviceID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+deviceID).Err()
}
