// Package memory keeps roster snapshots in process memory. It backs the
// "memory" storage driver and the tests of the console layer.
package memory

import (
	"context"
	"sync"

	"github.com/DonovanJJ/tp/internal/domain/roster"
)

// Store implements roster.Repository without persistence.
type Store struct {
	mu    sync.Mutex
	snap  *roster.Snapshot
	saves int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load implements roster.Repository.
func (s *Store) Load(_ context.Context) (*roster.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return roster.New(), nil
	}
	return roster.FromSnapshot(*s.snap)
}

// Save implements roster.Repository.
func (s *Store) Save(_ context.Context, snap roster.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = &snap
	s.saves++
	return nil
}

// Last returns the most recently saved snapshot.
func (s *Store) Last() (roster.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return roster.Snapshot{}, false
	}
	return *s.snap, true
}

// Saves returns how many times Save was called.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
