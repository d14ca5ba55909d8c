package ports

import (
	"context"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/report"
)

// ConfigSource loads a tenant's full entity collections. Implementations
// decide where the configuration lives (file, memory, remote store); the
// engine only ever sees the snapshot.
type ConfigSource interface {
	// Load returns the complete collections for one evaluation. Each call
	// must return a fresh snapshot; the engine never mutates it.
	Load(ctx context.Context) (domain.Collections, error)
}

// SnapshotStore persists the last computed validation snapshot per tenant.
// Snapshots are replaced wholesale; there is no partial update.
type SnapshotStore interface {
	// Save stores the snapshot for a tenant, replacing any previous one.
	Save(ctx context.Context, tenantID string, snapshot *report.Snapshot) error

	// Load retrieves the last stored snapshot for a tenant.
	// Returns domain.ErrSnapshotNotFound if none exists.
	Load(ctx context.Context, tenantID string) (*report.Snapshot, error)

	// Delete removes the stored snapshot for a tenant.
	Delete(ctx context.Context, tenantID string) error
}
