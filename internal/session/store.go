// Package session provides an explicit session context: bearer token and
// profile blob with read/write/clear operations, replacing ambient host
// storage lookups. Redis-backed when available, in-memory otherwise.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"emsinet_landing_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Session is the persisted session state.
type Session struct {
	Token   string          `json:"token"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// Store holds sessions by name. All operations are safe for concurrent use.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger

	mu     sync.Mutex
	memory map[string]memoryEntry
}

// New creates a session store. client may be nil, in which case sessions
// live only in process memory.
func New(client *redis.Client, ttl time.Duration, log *logger.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		log:    log,
		memory: make(map[string]memoryEntry),
	}
}

// Get reads a session. The second return value is false when no live
// session exists under the name.
func (s *Store) Get(ctx context.Context, name string) (Session, bool, error) {
	if s.client == nil {
		return s.memoryGet(name)
	}

	raw, err := s.client.Get(ctx, keyPrefix+name).Bytes()
	if err == redis.Nil {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return Session{}, false, err
	}
	return session, true, nil
}

// Set writes a session, replacing any existing one and resetting the TTL.
func (s *Store) Set(ctx context.Context, name string, session Session) error {
	if s.client == nil {
		s.memorySet(name, session)
		return nil
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+name, raw, s.ttl).Err()
}

// Clear removes a session. Clearing a missing session is not an error.
func (s *Store) Clear(ctx context.Context, name string) error {
	if s.client == nil {
		s.mu.Lock()
		delete(s.memory, name)
		s.mu.Unlock()
		return nil
	}
	return s.client.Del(ctx, keyPrefix+name).Err()
}

// Ping reports backend liveness for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Ping(ctx).Err()
}

func (s *Store) memoryGet(name string) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.memory[name]
	if !ok {
		return Session{}, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.memory, name)
		return Session{}, false, nil
	}
	return entry.session, true, nil
}

func (s *Store) memorySet(name string, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory[name] = memoryEntry{session: session, expiresAt: time.Now().Add(s.ttl)}
}

// TokenSource adapts one named session to the catalog client's TokenReader.
type TokenSource struct {
	store *Store
	name  string
}

// NewTokenSource creates a token source for the named session.
func NewTokenSource(store *Store, name string) *TokenSource {
	return &TokenSource{store: store, name: name}
}

// Token returns the session's bearer token, or empty when no session exists.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	session, ok, err := t.store.Get(ctx, t.name)
	if err != nil || !ok {
		return "", err
	}
	return session.Token, nil
}
