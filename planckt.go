// Package planckt serves the Planck 2018 cosmological parameters (base-LCDM,
// table 2 of arXiv:1807.06209). Each lookup returns a parameter's unit,
// central value and 68% interval for one analysis variant:
//
//	p, err := planckt.New("H_0", planckt.TTTEEELowELensingBAO)
//	// p.Value == 67.66, p.Limit68 == planckt.Symmetric{Delta: 0.42}, p.Units == "km/s/Mpc"
//
// The table is embedded in the binary, parsed once at start-up, and never
// modified, so New is safe to call from any number of goroutines.
package planckt

import (
	"github.com/corey/planckt/internal/domain/model"
	"github.com/corey/planckt/internal/domain/table"
	xlog "github.com/corey/planckt/internal/log"
	"github.com/rs/zerolog"
)

// Analysis-variant keys accepted by New.
const (
	TTLowE               = table.TTLowE
	TELowE               = table.TELowE
	EELowE               = table.EELowE
	TTTEEELowE           = table.TTTEEELowE
	TTTEEELowELensing    = table.TTTEEELowELensing
	TTTEEELowELensingBAO = table.TTTEEELowELensingBAO
)

// LCDM is the base-LCDM model, the default for New.
const LCDM = model.LCDM

type (
	// Table is an immutable parameter table.
	Table = table.Table

	// Estimate is a central value with its raw [lower, upper] 68% deltas.
	Estimate = table.Estimate

	// Registry maps model identifiers to tables.
	Registry = model.Registry
)

// Param is the result of one lookup. It is a plain value: nothing in it is
// shared with the table.
type Param struct {
	Name     string  `json:"name"`
	Analysis string  `json:"analysis"`
	Model    string  `json:"model"`
	Units    string  `json:"units"`
	Value    float64 `json:"value"`
	Limit68  Limit68 `json:"limit68"`
}

// Asymmetric reports whether the 68% interval has different lower and upper
// deltas.
func (p *Param) Asymmetric() bool {
	_, ok := p.Limit68.(Asymmetric)
	return ok
}

type options struct {
	model    string
	registry *model.Registry
	logger   *zerolog.Logger
}

// Option configures New.
type Option func(*options)

// WithModel selects the cosmological model. Only LCDM is published.
func WithModel(id string) Option {
	return func(o *options) { o.model = id }
}

// WithRegistry looks parameters up in r instead of the embedded tables.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger routes the asymmetric-interval advisory to l. Pass
// zerolog.Nop() to suppress it.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// New looks up parameter name under the given analysis variant.
//
// It fails with ModelNotSupportedError for any model other than LCDM, with
// ParameterNotFoundError for an unknown name, and with
// AnalysisVariantNotFoundError when the parameter does not define analysis.
// When the interval is asymmetric New still succeeds and logs one warning
// so callers know to pick the right side.
func New(name, analysis string, opts ...Option) (*Param, error) {
	o := options{
		model:    model.Default,
		registry: model.Builtin(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = model.Builtin()
	}

	tbl, err := o.registry.Table(o.model)
	if err != nil {
		return nil, err
	}

	units, err := tbl.Units(name)
	if err != nil {
		return nil, err
	}
	est, err := tbl.Estimate(name, analysis)
	if err != nil {
		return nil, err
	}

	p := &Param{
		Name:     name,
		Analysis: analysis,
		Model:    o.model,
		Units:    units,
		Value:    est.Value,
		Limit68:  newLimit68(est.Limits68),
	}

	if a, ok := p.Limit68.(Asymmetric); ok {
		l := o.logger
		if l == nil {
			c := xlog.WithComponent("param")
			l = &c
		}
		l.Warn().
			Str(xlog.FieldEvent, "limit68.asymmetric").
			Str(xlog.FieldModel, o.model).
			Str(xlog.FieldParameter, name).
			Str(xlog.FieldAnalysis, analysis).
			Float64(xlog.FieldLower, a.Lower).
			Float64(xlog.FieldUpper, a.Upper).
			Msg("lower and upper 68% limits differ; limit68 is [lower, upper], use the matching side")
	}

	return p, nil
}

// Lookup is New with the default model.
func Lookup(name, analysis string) (*Param, error) {
	return New(name, analysis)
}

// Variants returns every analysis-variant key in canonical order.
func Variants() []string {
	return table.Variants()
}

// Builtin returns the registry of embedded tables.
func Builtin() *Registry {
	return model.Builtin()
}

// DefaultTable returns the embedded base-LCDM table.
func DefaultTable() *Table {
	t, err := model.Builtin().Table(model.Default)
	if err != nil {
		// The builtin registry always holds the default model.
		panic(err)
	}
	return t
}
