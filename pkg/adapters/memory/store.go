// Package memory provides an in-memory SnapshotStore, used as the default
// backend and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
	"github.com/aretw0/canopy/pkg/report"
)

// Store implements ports.SnapshotStore with a mutex-guarded map.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]report.Snapshot
}

var _ ports.SnapshotStore = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{snapshots: make(map[string]report.Snapshot)}
}

// Save stores a copy of the snapshot for the tenant.
func (s *Store) Save(ctx context.Context, tenantID string, snapshot *report.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[tenantID] = *snapshot
	return nil
}

// Load returns the stored snapshot, or domain.ErrSnapshotNotFound.
func (s *Store) Load(ctx context.Context, tenantID string) (*report.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[tenantID]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return &snap, nil
}

// Delete removes the tenant's snapshot. Deleting a missing snapshot is a
// no-op.
func (s *Store) Delete(ctx context.Context, tenantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, tenantID)
	return nil
}
