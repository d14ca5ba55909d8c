// Package redis provides a Redis-backed SnapshotStore, so multiple
// dashboard replicas can share the last computed validation state per
// tenant.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
	"github.com/aretw0/canopy/pkg/report"
)

// Store implements ports.SnapshotStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.SnapshotStore = (*Store)(nil)

type Option func(*Store)

// WithTTL sets the expiration for stored snapshots.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for snapshots.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "canopy:snapshot:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(tenantID string) string {
	return s.prefix + tenantID
}

// Save serializes the snapshot to JSON and stores it under the tenant key,
// replacing any previous value.
func (s *Store) Save(ctx context.Context, tenantID string, snapshot *report.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(tenantID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load retrieves and deserializes the tenant's snapshot.
func (s *Store) Load(ctx context.Context, tenantID string) (*report.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key(tenantID)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap report.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes the tenant's snapshot.
func (s *Store) Delete(ctx context.Context, tenantID string) error {
	if err := s.client.Del(ctx, s.key(tenantID)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying client connection.
func (s *Store) Close() error {
	return s.client.Close()
}
