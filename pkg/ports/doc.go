/*
Package ports defines the driven ports (interfaces) for the Canopy engine.

These interfaces decouple the core validation logic from external
implementations, allowing the engine to work with various configuration
sources and snapshot backends.

# Key Interfaces

  - ConfigSource: Loads a tenant's entity collections (e.g., from a YAML file).
  - SnapshotStore: Persists the last computed ValidationSnapshot per tenant.
*/
package ports
