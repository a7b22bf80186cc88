package cmd

import (
	"fmt"
	"os"

	"github.com/corey/planckt"
	"github.com/corey/planckt/internal/adapters/bbolt"
	"github.com/corey/planckt/internal/domain/model"
	"github.com/corey/planckt/internal/domain/table"
)

// openRegistry returns the embedded tables, or a registry holding the
// snapshot of id read from the bbolt file at path. A snapshot without id
// fails with ports.ErrSnapshotNotFound. The snapshot is read into memory,
// so the file is closed before returning.
func openRegistry(path, id string) (*planckt.Registry, error) {
	if path == "" {
		return planckt.Builtin(), nil
	}
	if !model.Supported(id) {
		return nil, &model.ModelNotSupportedError{Model: id}
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	store, err := bbolt.OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer store.Close()

	tbl, err := store.LoadTable(id)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	return model.NewRegistry(map[string]*table.Table{id: tbl})
}

// tableFor resolves the table of one model from the builtin registry or a snapshot.
func (o *rootOptions) tableFor(modelFlag, snapshot string) (*planckt.Table, error) {
	id := o.modelOr(modelFlag)
	reg, err := openRegistry(snapshot, id)
	if err != nil {
		return nil, err
	}
	return reg.Table(id)
}
