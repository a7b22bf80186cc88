package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML table document and validates it.
// Decoding is strict: unknown fields and trailing documents are errors.
func Parse(data []byte) (*Table, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidf("document is empty")
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, invalidf("multiple documents or trailing content")
	}

	return New(doc)
}

// Load reads and parses one table file from an fs.FS.
func Load(fsys fs.FS, path string) (*Table, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read table %q: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// LoadFile reads and parses a table file from disk. Only .yaml and .yml
// files are accepted.
func LoadFile(path string) (*Table, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported table format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- table paths are provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}
