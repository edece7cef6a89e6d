// Package memory provides in-memory implementations of the puzzle store and
// catalog ports, used as defaults and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/solstice/pkg/domain"
)

// Store implements ports.PuzzleStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Puzzle
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Puzzle),
	}
}

// Save persists the puzzle in memory.
func (s *Store) Save(ctx context.Context, p domain.Puzzle) error {
	// Clone to ensure isolation, similar to serialization
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[p.ID] = p.Clone()
	return nil
}

// Load retrieves a puzzle from memory.
func (s *Store) Load(ctx context.Context, id string) (domain.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.data[id]
	if !ok {
		return domain.Puzzle{}, domain.ErrPuzzleNotFound
	}
	// Clone on read so the caller can't mutate stored state through slices.
	return p.Clone(), nil
}

// Delete removes a puzzle.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the stored puzzle IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
