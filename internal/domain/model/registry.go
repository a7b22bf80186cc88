// Package model binds cosmological model identifiers to their parameter
// tables. Only the base-LCDM model is published; any other identifier is
// rejected with ModelNotSupportedError.
//
// The builtin table is parsed from the embedded resource during package
// initialisation, so it exists before any lookup can run.
package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/corey/planckt/internal/domain/table"
	"github.com/corey/planckt/tables"
)

// LCDM identifies the base-LCDM model.
const LCDM = "lcdm"

// Default is the model used when the caller names none.
const Default = LCDM

// ErrModelNotSupported is matched by every ModelNotSupportedError.
var ErrModelNotSupported = errors.New("model not supported")

// ModelNotSupportedError reports a model identifier with no published table.
type ModelNotSupportedError struct {
	Model string
}

func (e *ModelNotSupportedError) Error() string {
	return fmt.Sprintf("model %q is not available", e.Model)
}

// Is reports whether target is ErrModelNotSupported.
func (e *ModelNotSupportedError) Is(target error) bool {
	return target == ErrModelNotSupported
}

var supported = map[string]string{
	LCDM: tables.LCDM,
}

// Supported reports whether model has a published table.
func Supported(model string) bool {
	_, ok := supported[model]
	return ok
}

// Models returns the supported model identifiers.
func Models() []string {
	return []string{LCDM}
}

// Registry maps supported model identifiers to tables.
type Registry struct {
	tables map[string]*table.Table
}

var builtin = mustLoadBuiltin()

func mustLoadBuiltin() *Registry {
	r := &Registry{tables: make(map[string]*table.Table, len(supported))}
	for id, path := range supported {
		t, err := table.Load(tables.FS, path)
		if err != nil {
			panic(fmt.Sprintf("model %s: embedded table: %v", id, err))
		}
		r.tables[id] = t
	}
	return r
}

// Builtin returns the registry of embedded tables.
func Builtin() *Registry {
	return builtin
}

// NewRegistry builds a registry from externally loaded tables, such as a
// snapshot. Every key must be a supported model and must match the model
// recorded in its table.
func NewRegistry(tbls map[string]*table.Table) (*Registry, error) {
	r := &Registry{tables: make(map[string]*table.Table, len(tbls))}
	for id, t := range tbls {
		if !Supported(id) {
			return nil, &ModelNotSupportedError{Model: id}
		}
		if t == nil {
			return nil, fmt.Errorf("model %s: nil table", id)
		}
		if got := t.Meta().Model; got != id {
			return nil, fmt.Errorf("model %s: table is for model %q", id, got)
		}
		r.tables[id] = t
	}
	return r, nil
}

// Table returns the table for model.
func (r *Registry) Table(model string) (*table.Table, error) {
	if !Supported(model) {
		return nil, &ModelNotSupportedError{Model: model}
	}
	t, ok := r.tables[model]
	if !ok {
		return nil, &ModelNotSupportedError{Model: model}
	}
	return t, nil
}

// Models lists the models the registry holds tables for, sorted.
func (r *Registry) Models() []string {
	ids := make([]string, 0, len(r.tables))
	for id := range r.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
