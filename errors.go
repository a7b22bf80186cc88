package planckt

import (
	"github.com/corey/planckt/internal/domain/model"
	"github.com/corey/planckt/internal/domain/table"
)

// Errors returned by New. Each typed error carries the offending identifier;
// match the sentinels with errors.Is and the types with errors.As.
var (
	ErrModelNotSupported       = model.ErrModelNotSupported
	ErrParameterNotFound       = table.ErrParameterNotFound
	ErrAnalysisVariantNotFound = table.ErrAnalysisVariantNotFound
)

type (
	// ModelNotSupportedError reports a model with no published table.
	ModelNotSupportedError = model.ModelNotSupportedError

	// ParameterNotFoundError reports a parameter name absent from the table.
	ParameterNotFoundError = table.ParameterNotFoundError

	// AnalysisVariantNotFoundError reports an analysis variant the parameter
	// does not define.
	AnalysisVariantNotFoundError = table.AnalysisVariantNotFoundError
)
