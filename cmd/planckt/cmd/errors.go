package cmd

import (
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns ErrTimeout when it cannot acquire the file lock within the
// configured deadline.
func isDBLockError(err error) bool {
	return errors.Is(err, bolt.ErrTimeout)
}

// diagnoseDBLock returns actionable guidance when a snapshot file is held
// open by another process.
func diagnoseDBLock(path string) string {
	return fmt.Sprintf("snapshot %s is locked by another process\n"+
		"  → find the process:  fuser %s\n"+
		"  → then retry your command", path, path)
}
