package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/pixwall/internal/photo"
)

// Snapshot represents the latest feed data available to the UI.
type Snapshot struct {
	Photos      []photo.Record
	Loaded      bool
	LastUpdated time.Time
	LastError   error
}

// Settled reports whether the feed request finished, successfully or not.
func (s Snapshot) Settled() bool {
	return s.Loaded || s.LastError != nil
}

// Failed reports whether the feed request failed and no photos are known.
func (s Snapshot) Failed() bool {
	return !s.Loaded && s.LastError != nil
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of a feed fetch. When err is non-nil previously
// loaded photos are kept and the error is recorded for visibility.
func (s *Store) Update(records []photo.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Photos = clonePhotos(records)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Photos = clonePhotos(s.snapshot.Photos)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func clonePhotos(items []photo.Record) []photo.Record {
	if len(items) == 0 {
		return nil
	}
	dup := make([]photo.Record, len(items))
	copy(dup, items)
	return dup
}
