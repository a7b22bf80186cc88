package table

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by table construction and lookups.
// Use errors.Is against these; use errors.As against the typed errors below
// to recover the offending key.
var (
	// ErrParameterNotFound is returned when a parameter name is not in the table.
	ErrParameterNotFound = errors.New("parameter not found")

	// ErrAnalysisVariantNotFound is returned when a parameter exists but does
	// not define the requested analysis variant.
	ErrAnalysisVariantNotFound = errors.New("analysis variant not found")

	// ErrInvalidTable is returned when a table document fails validation.
	ErrInvalidTable = errors.New("invalid table")
)

// ParameterNotFoundError reports a lookup of a name absent from the table.
type ParameterNotFoundError struct {
	Name string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("parameter %q not found", e.Name)
}

// Is reports whether target is ErrParameterNotFound.
func (e *ParameterNotFoundError) Is(target error) bool {
	return target == ErrParameterNotFound
}

// AnalysisVariantNotFoundError reports a lookup of an analysis variant the
// named parameter does not define.
type AnalysisVariantNotFoundError struct {
	Name     string
	Analysis string
}

func (e *AnalysisVariantNotFoundError) Error() string {
	return fmt.Sprintf("parameter %q has no analysis variant %q", e.Name, e.Analysis)
}

// Is reports whether target is ErrAnalysisVariantNotFound.
func (e *AnalysisVariantNotFoundError) Is(target error) bool {
	return target == ErrAnalysisVariantNotFound
}

// invalidf wraps ErrInvalidTable with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTable, fmt.Sprintf(format, args...))
}
