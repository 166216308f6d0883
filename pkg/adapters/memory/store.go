package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jphuse/nuskell/pkg/domain"
)

// Store implements ports.SystemStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the system in memory. The system is serialized on write so
// the caller cannot mutate stored state through retained pointers, matching
// the behavior of the durable adapters.
func (s *Store) Save(ctx context.Context, id string, system *domain.System) error {
	data, err := json.Marshal(system)
	if err != nil {
		return fmt.Errorf("failed to marshal system: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = data
	return nil
}

// Load retrieves a system from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.System, error) {
	s.mu.RLock()
	data, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSystemNotFound
	}

	var system domain.System
	if err := json.Unmarshal(data, &system); err != nil {
		return nil, fmt.Errorf("failed to unmarshal system: %w", err)
	}
	return &system, nil
}

// Delete removes the system.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns all stored system IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
