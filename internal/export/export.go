// Package export serialises a parameter table as YAML or JSON. Files are
// replaced atomically, so a reader never sees a half-written table.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/corey/planckt/internal/domain/table"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat resolves a user-supplied format name ("yml" is accepted).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want yaml or json)", s)
	}
}

// Write encodes t to w. The YAML form is accepted by table.Parse, so an
// exported table can be edited and checked again.
func Write(w io.Writer, t *table.Table, f Format) error {
	if t == nil {
		return fmt.Errorf("nil table")
	}
	doc := t.Document()

	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// WriteFile writes t to path through a pending file that replaces path only
// once fully written and synced.
func WriteFile(path string, t *table.Table, f Format) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending export file: %w", err)
	}
	// Removes the temp file unless CloseAtomicallyReplace succeeded.
	defer func() { _ = pendingFile.Cleanup() }()

	if err := Write(pendingFile, t, f); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
