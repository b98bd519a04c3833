package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

// ErrTokenNotFound is returned when a token is unknown or expired.
var ErrTokenNotFound = errors.New("token not found or expired")

// Store is the access token storage contract shared by the Redis and
// in-memory backends.
type Store interface {
	Save(ctx context.Context, token, username string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
	Ping(ctx context.Context) error
	Close() error
}

// NewToken returns an opaque random token.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

type memoryEntry struct {
	username  string
	expiresAt time.Time
}

// MemoryStore is the fallback backend used when no Redis URL is
// configured. Expired entries are dropped lazily on lookup.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(_ context.Context, token, username string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = memoryEntry{username: username, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok {
		return "", ErrTokenNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.tokens, token)
		return "", ErrTokenNotFound
	}
	return entry.username, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
