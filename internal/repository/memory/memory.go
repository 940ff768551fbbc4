// Package memory provides an in-process CollectionStore, used by tests and
// by tools that do not need durable state.
package memory

import (
	"context"
	"sync"
)

// Store keeps collection documents in a map.
type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{docs: make(map[string][]byte)}
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[name]
	if !ok {
		return []byte("[]"), nil
	}
	return append([]byte(nil), data...), nil
}

func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[name] = append([]byte(nil), data...)
	return nil
}

func (s *Store) Migrate(ctx context.Context) error { return nil }

func (s *Store) Close() error { return nil }
