package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/report"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a
// SnapshotStore implementation adheres to the interface contract. Adapter
// packages call it from their own tests.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	tenantID := "contract-tenant-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := &report.Snapshot{
			ByEntity: map[string]report.EntityFindings{
				"cta-c1": {
					Errors: []domain.Finding{
						domain.ErrorFinding(domain.KindCTA, "c1", "form_id", "Form ID is required"),
					},
				},
			},
			TotalErrors: 1,
			MayDeploy:   false,
			GeneratedAt: time.Now().UTC().Truncate(time.Second),
		}

		err := store.Save(ctx, tenantID, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, tenantID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, snap.TotalErrors, loaded.TotalErrors)
		assert.False(t, loaded.MayDeploy)
		require.Contains(t, loaded.ByEntity, "cta-c1")
		assert.Equal(t, "form_id", loaded.ByEntity["cta-c1"].Errors[0].Field)
	})

	t.Run("Replace Wholesale", func(t *testing.T) {
		clean := &report.Snapshot{
			ByEntity:  map[string]report.EntityFindings{},
			MayDeploy: true,
		}
		require.NoError(t, store.Save(ctx, tenantID, clean))

		loaded, err := store.Load(ctx, tenantID)
		require.NoError(t, err)
		assert.True(t, loaded.MayDeploy)
		assert.NotContains(t, loaded.ByEntity, "cta-c1", "previous findings must not leak through")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "no-such-tenant")
		assert.True(t, errors.Is(err, domain.ErrSnapshotNotFound), "expected ErrSnapshotNotFound, got %v", err)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, tenantID))

		_, err := store.Load(ctx, tenantID)
		assert.True(t, errors.Is(err, domain.ErrSnapshotNotFound))
	})

	t.Run("Delete Non-Existent Is Idempotent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "no-such-tenant"))
	})
}
