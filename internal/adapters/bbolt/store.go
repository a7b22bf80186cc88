// Package bbolt implements the ports.SnapshotStore interface using bbolt (embedded B+ tree).
// Each model gets its own top-level bucket. Within that bucket a "meta" key
// holds provenance and parameter order, and the "parameters" sub-bucket holds
// one JSON-serialized row per parameter. Writes are transactional: a crash
// mid-write cannot corrupt a previously committed snapshot.
package bbolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/corey/planckt/internal/domain/model"
	"github.com/corey/planckt/internal/domain/table"
	"github.com/corey/planckt/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketParameters = []byte("parameters")
	keyMeta          = []byte("meta")
)

// Store implements ports.SnapshotStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.SnapshotStore = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenReadOnly opens an existing snapshot without taking the write lock.
func OpenReadOnly(path string) (*Store, error) {
	db, err := bolt.Open(path, 0400, &bolt.Options{Timeout: 1 * time.Second, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// metaJSON is the stored form of a table's provenance. Order keeps the
// publication order, which bbolt's sorted keys would otherwise lose.
type metaJSON struct {
	Model   string   `json:"model"`
	Source  string   `json:"source"`
	Version string   `json:"version"`
	Order   []string `json:"order"`
}

// SaveTable persists t under its model, replacing any earlier snapshot.
func (s *Store) SaveTable(t *table.Table) error {
	if t == nil {
		return fmt.Errorf("nil table")
	}
	doc := t.Document()
	if !model.Supported(doc.Model) {
		return &model.ModelNotSupportedError{Model: doc.Model}
	}

	meta := metaJSON{
		Model:   doc.Model,
		Source:  doc.Source,
		Version: doc.Version,
		Order:   make([]string, 0, len(doc.Parameters)),
	}
	rows := make(map[string][]byte, len(doc.Parameters))
	for _, p := range doc.Parameters {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal parameter %q: %w", p.Name, err)
		}
		rows[p.Name] = data
		meta.Order = append(meta.Order, p.Name)
	}
	metaData, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		name := []byte(doc.Model)
		if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		mb, err := tx.CreateBucket(name)
		if err != nil {
			return err
		}
		if err := mb.Put(keyMeta, metaData); err != nil {
			return err
		}
		pb, err := mb.CreateBucket(bucketParameters)
		if err != nil {
			return err
		}
		for _, pname := range meta.Order {
			if err := pb.Put([]byte(pname), rows[pname]); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadTable retrieves the snapshot of a model and validates it as a table.
func (s *Store) LoadTable(id string) (*table.Table, error) {
	var metaData []byte
	rows := make(map[string][]byte)

	err := s.db.View(func(tx *bolt.Tx) error {
		mb := tx.Bucket([]byte(id))
		if mb == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := mb.Get(keyMeta); v != nil {
			metaData = make([]byte, len(v))
			copy(metaData, v)
		}
		pb := mb.Bucket(bucketParameters)
		if pb == nil {
			return nil
		}
		return pb.ForEach(func(k, v []byte) error {
			row := make([]byte, len(v))
			copy(row, v)
			rows[string(k)] = row
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if metaData == nil {
		return nil, fmt.Errorf("model %q: %w", id, ports.ErrSnapshotNotFound)
	}

	var meta metaJSON
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("unmarshal meta: %w", err)
	}
	if meta.Model != id {
		return nil, fmt.Errorf("snapshot bucket %q holds model %q", id, meta.Model)
	}

	doc := table.Document{
		Model:      meta.Model,
		Source:     meta.Source,
		Version:    meta.Version,
		Parameters: make([]table.ParameterDoc, 0, len(meta.Order)),
	}
	for _, name := range meta.Order {
		data, ok := rows[name]
		if !ok {
			return nil, fmt.Errorf("snapshot %q: parameter %q listed but not stored", id, name)
		}
		var p table.ParameterDoc
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal parameter %q: %w", name, err)
		}
		doc.Parameters = append(doc.Parameters, p)
	}
	if len(rows) != len(meta.Order) {
		return nil, fmt.Errorf("snapshot %q: %d stored parameters, %d listed", id, len(rows), len(meta.Order))
	}

	return table.New(doc)
}

// Models lists the models that have a snapshot.
func (s *Store) Models() ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, b *bolt.Bucket) error {
			if b.Get(keyMeta) != nil {
				out = append(out, string(name))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// DeleteTable removes the snapshot of a model.
// Idempotent: deleting a nonexistent snapshot is not an error.
func (s *Store) DeleteTable(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(id)); errors.Is(err, bolt.ErrBucketNotFound) {
			return nil // idempotent
		} else {
			return err
		}
	})
}

// Registry loads every snapshot in the store into a model registry.
func (s *Store) Registry() (*model.Registry, error) {
	ids, err := s.Models()
	if err != nil {
		return nil, err
	}
	tbls := make(map[string]*table.Table, len(ids))
	for _, id := range ids {
		t, err := s.LoadTable(id)
		if err != nil {
			return nil, err
		}
		tbls[id] = t
	}
	return model.NewRegistry(tbls)
}
