// Package tables embeds the published parameter tables for compile-time inclusion.
// Each YAML file holds one model's table: metadata plus an ordered list of
// parameters, each with a unit and one estimate per analysis variant.
//
// Usage:
//
//	table.Load(tables.FS, tables.LCDM)
package tables

import "embed"

// LCDM is the path of the base-LCDM table inside FS.
const LCDM = "lcdm.yaml"

//go:embed *.yaml
var FS embed.FS
