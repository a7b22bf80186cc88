// Package table holds a published parameter table: for each parameter, one
// unit label and one estimate per analysis variant. A Table is validated and
// frozen by New; it has no mutation methods and every accessor returns a copy,
// so a single Table may be shared by any number of concurrent readers.
package table

import (
	"math"
	"sort"
)

// Estimate is a central value with its 68% interval, given as
// [lower, upper] deltas below and above Value.
type Estimate struct {
	Value    float64
	Limits68 [2]float64
}

// Symmetric reports whether the lower and upper deltas are equal.
func (e Estimate) Symmetric() bool {
	return e.Limits68[0] == e.Limits68[1]
}

// Entry is one parameter row: its unit and the estimates it defines.
type Entry struct {
	Name     string
	Units    string
	Analyses map[string]Estimate
}

// Meta describes where a table comes from.
type Meta struct {
	Model   string
	Source  string
	Version string
}

type entry struct {
	units    string
	analyses map[string]Estimate
}

// Table is an immutable parameter table.
type Table struct {
	meta    Meta
	names   []string // publication order
	entries map[string]*entry
}

// New validates doc and builds a Table from it. The document is copied;
// later changes to doc do not affect the Table.
func New(doc Document) (*Table, error) {
	if doc.Model == "" {
		return nil, invalidf("model is empty")
	}
	if len(doc.Parameters) == 0 {
		return nil, invalidf("model %q has no parameters", doc.Model)
	}

	t := &Table{
		meta: Meta{
			Model:   doc.Model,
			Source:  doc.Source,
			Version: doc.Version,
		},
		names:   make([]string, 0, len(doc.Parameters)),
		entries: make(map[string]*entry, len(doc.Parameters)),
	}

	for i, p := range doc.Parameters {
		if p.Name == "" {
			return nil, invalidf("parameter #%d has no name", i)
		}
		if _, dup := t.entries[p.Name]; dup {
			return nil, invalidf("duplicate parameter %q", p.Name)
		}
		if p.Units == "" {
			return nil, invalidf("parameter %q has no units", p.Name)
		}
		if len(p.Analyses) == 0 {
			return nil, invalidf("parameter %q has no analyses", p.Name)
		}

		e := &entry{
			units:    p.Units,
			analyses: make(map[string]Estimate, len(p.Analyses)),
		}
		for _, key := range sortedKeys(p.Analyses) {
			est, err := buildEstimate(p.Name, key, p.Analyses[key])
			if err != nil {
				return nil, err
			}
			e.analyses[key] = est
		}

		t.names = append(t.names, p.Name)
		t.entries[p.Name] = e
	}

	return t, nil
}

func buildEstimate(name, key string, d EstimateDoc) (Estimate, error) {
	switch {
	case key == unitsKey:
		return Estimate{}, invalidf("parameter %q: %q is reserved for the unit label", name, key)
	case !KnownVariant(key):
		return Estimate{}, invalidf("parameter %q: unknown analysis variant %q", name, key)
	case len(d.Limits68) != 2:
		return Estimate{}, invalidf("parameter %q, %s: limits68 needs 2 values, got %d", name, key, len(d.Limits68))
	case !finite(d.Value):
		return Estimate{}, invalidf("parameter %q, %s: value is not finite", name, key)
	}
	for _, l := range d.Limits68 {
		if !finite(l) || l < 0 {
			return Estimate{}, invalidf("parameter %q, %s: limit %v is not a non-negative delta", name, key, l)
		}
	}
	return Estimate{
		Value:    d.Value,
		Limits68: [2]float64{d.Limits68[0], d.Limits68[1]},
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Meta returns the table's provenance.
func (t *Table) Meta() Meta {
	return t.meta
}

// Len returns the number of parameters.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns parameter names in publication order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Units returns the unit label of a parameter.
func (t *Table) Units(name string) (string, error) {
	e, ok := t.entries[name]
	if !ok {
		return "", &ParameterNotFoundError{Name: name}
	}
	return e.units, nil
}

// Estimate returns the estimate of a parameter under one analysis variant.
func (t *Table) Estimate(name, analysis string) (Estimate, error) {
	e, ok := t.entries[name]
	if !ok {
		return Estimate{}, &ParameterNotFoundError{Name: name}
	}
	est, ok := e.analyses[analysis]
	if !ok {
		return Estimate{}, &AnalysisVariantNotFoundError{Name: name, Analysis: analysis}
	}
	return est, nil
}

// Analyses returns the analysis variants a parameter defines, in canonical order.
func (t *Table) Analyses(name string) ([]string, error) {
	e, ok := t.entries[name]
	if !ok {
		return nil, &ParameterNotFoundError{Name: name}
	}
	return orderedVariants(e.analyses), nil
}

// Entry returns a copy of one parameter row.
func (t *Table) Entry(name string) (Entry, error) {
	e, ok := t.entries[name]
	if !ok {
		return Entry{}, &ParameterNotFoundError{Name: name}
	}
	analyses := make(map[string]Estimate, len(e.analyses))
	for k, v := range e.analyses {
		analyses[k] = v
	}
	return Entry{Name: name, Units: e.units, Analyses: analyses}, nil
}

// Document returns the serialisable form of the table. New(t.Document())
// yields an equal table.
func (t *Table) Document() Document {
	doc := Document{
		Model:      t.meta.Model,
		Source:     t.meta.Source,
		Version:    t.meta.Version,
		Parameters: make([]ParameterDoc, 0, len(t.names)),
	}
	for _, name := range t.names {
		e := t.entries[name]
		analyses := make(Analyses, len(e.analyses))
		for k, est := range e.analyses {
			analyses[k] = EstimateDoc{
				Value:    est.Value,
				Limits68: []float64{est.Limits68[0], est.Limits68[1]},
			}
		}
		doc.Parameters = append(doc.Parameters, ParameterDoc{
			Name:     name,
			Units:    e.units,
			Analyses: analyses,
		})
	}
	return doc
}

// orderedVariants returns the keys of m, known variants first in canonical
// order, anything else after in lexical order.
func orderedVariants[V any](m map[string]V) []string {
	keys := sortedKeys(m)
	sort.SliceStable(keys, func(i, j int) bool {
		return rank(keys[i]) < rank(keys[j])
	})
	return keys
}

func rank(key string) int {
	if r, ok := variantRank[key]; ok {
		return r
	}
	return len(variants)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
