package log

// Canonical field name constants for structured logging.
const (
	// Process fields
	FieldService   = "service"
	FieldVersion   = "version"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Lookup fields
	FieldModel     = "model"
	FieldParameter = "parameter"
	FieldAnalysis  = "analysis"
	FieldLower     = "lower"
	FieldUpper     = "upper"

	// File fields
	FieldPath   = "path"
	FieldFormat = "format"
	FieldCount  = "count"
)
