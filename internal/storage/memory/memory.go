// Package memory provides an in-process implementation of storage.KV.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mmynk/splitwizard/internal/storage"
)

var _ storage.KV = (*Store)(nil)

// Store keeps values in a map. Nothing survives the process.
type Store struct {
	mu     sync.Mutex
	values map[string][]byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = slices.Clone(value)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Store) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *Store) Close() error {
	return nil
}
