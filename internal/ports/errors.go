package ports

import "errors"

// ErrSnapshotNotFound is returned when a store holds no snapshot of a model.
var ErrSnapshotNotFound = errors.New("snapshot not found")
