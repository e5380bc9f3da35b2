package session

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.Mutex
	users   map[string]string
	flashes map[string][]Flash
}

// NewMemoryStore returns an in-process Store used by tests and as a dev
// fallback when redis is unavailable.
func NewMemoryStore() Store {
	return &memoryStore{
		users:   make(map[string]string),
		flashes: make(map[string][]Flash),
	}
}

func (s *memoryStore) SetUser(_ context.Context, sid, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[sid] = username
	return nil
}

func (s *memoryStore) User(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[sid], nil
}

func (s *memoryStore) ClearUser(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, sid)
	return nil
}

func (s *memoryStore) AddFlash(_ context.Context, sid string, f Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[sid] = append(s.flashes[sid], f)
	return nil
}

func (s *memoryStore) Flashes(_ context.Context, sid string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flashes[sid]
	delete(s.flashes, sid)
	return out, nil
}
