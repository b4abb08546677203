package control

import (
	"sync"

	"imagegallery/internal/gallery"
)

// SnapshotStore holds the latest gallery snapshot published by the UI.
// Safe for concurrent use.
type SnapshotStore struct {
	mu   sync.RWMutex
	snap gallery.Snapshot
}

// NewSnapshotStore returns an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snap: gallery.Snapshot{Items: []gallery.Item{}}}
}

// Set replaces the snapshot.
func (s *SnapshotStore) Set(snap gallery.Snapshot) {
	if snap.Items == nil {
		snap.Items = []gallery.Item{}
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Get returns the latest snapshot.
func (s *SnapshotStore) Get() gallery.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
