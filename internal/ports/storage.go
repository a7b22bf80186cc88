// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "github.com/corey/planckt/internal/domain/table"

// SnapshotStore persists parameter tables outside the binary so a table can
// be queried from a file instead of the embedded resource.
//
// Each model gets its own namespace. A saved table replaces any earlier
// snapshot of the same model in one transaction: a crash mid-write leaves the
// previous snapshot intact.
type SnapshotStore interface {
	// SaveTable persists t under its model. Unsupported models are rejected.
	SaveTable(t *table.Table) error

	// LoadTable retrieves and re-validates the snapshot of a model.
	// Returns an error matching ErrSnapshotNotFound when none exists.
	LoadTable(model string) (*table.Table, error)

	// Models lists the models that have a snapshot, in lexical order.
	Models() ([]string, error)

	// DeleteTable removes the snapshot of a model.
	// Idempotent: deleting a nonexistent snapshot is not an error.
	DeleteTable(model string) error

	// Close releases the underlying file.
	Close() error
}
