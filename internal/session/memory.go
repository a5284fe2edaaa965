package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process session store. Sessions do not survive
// restarts; production uses RedisStore.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]uint
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]uint)}
}

// Get resolves a token to a user id
func (s *MemoryStore) Get(ctx context.Context, token string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.sessions[token]
	if !ok {
		return 0, ErrNoSession
	}
	return id, nil
}

// Set binds a token to a user id
func (s *MemoryStore) Set(ctx context.Context, token string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userID
	return nil
}

// Clear removes the binding for a token
func (s *MemoryStore) Clear(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
