// Package settings persists small string-valued render settings behind an
// injected store so the culling core has no dependency on any particular
// storage mechanism.
package settings

import "sync"

// Store is the key-value surface the render manager persists through. Get
// returns the empty string for unset keys.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemStore is an in-process Store for tests and hosts without persistence.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
