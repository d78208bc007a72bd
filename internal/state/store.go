package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/roster/internal/roster"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Entities            []roster.Entity
	HasData             bool   // At least one fetch has succeeded
	Version             uint64 // Bumped only when the entity set changes
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the feed has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored entity set. When err is non-nil the previous data
// is kept but the error is recorded for visibility. An unchanged set refreshes
// the timestamps without bumping Version, so the UI does not rebuild on every poll.
func (s *Store) Update(entities []roster.Entity, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if !s.snapshot.HasData || !roster.Equal(s.snapshot.Entities, entities) {
		s.snapshot.Entities = roster.Clone(entities)
		s.snapshot.Version++
	}
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Version returns the current entity-set version without copying the set.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entities = roster.Clone(s.snapshot.Entities)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
