package domain

import "errors"

// ErrSnapshotNotFound is returned when a tenant has no stored validation
// snapshot.
var ErrSnapshotNotFound = errors.New("snapshot not found")
