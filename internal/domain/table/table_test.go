package table

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/corey/planckt/tables"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Embedded resource: the base-LCDM table loads and has the published shape
// =============================================================================

func loadLCDM(t *testing.T) *Table {
	t.Helper()
	tbl, err := Load(tables.FS, tables.LCDM)
	require.NoError(t, err)
	return tbl
}

func TestLoad_EmbeddedTable(t *testing.T) {
	tbl := loadLCDM(t)

	assert.Equal(t, 30, tbl.Len())
	assert.Equal(t, "lcdm", tbl.Meta().Model)
	assert.Equal(t, "18.12.01", tbl.Meta().Version)
	assert.Contains(t, tbl.Meta().Source, "1807.06209")

	names := tbl.Names()
	assert.Equal(t, "Omega_b__h2", names[0], "publication order is preserved")
	assert.Equal(t, "f_2000^217", names[len(names)-1])
}

func TestLoad_EstimateCounts(t *testing.T) {
	// 27 parameters carry all six variants; the three foreground amplitudes carry four.
	tbl := loadLCDM(t)

	total, asymmetric := 0, 0
	for _, name := range tbl.Names() {
		analyses, err := tbl.Analyses(name)
		require.NoError(t, err)
		total += len(analyses)
		for _, a := range analyses {
			est, err := tbl.Estimate(name, a)
			require.NoError(t, err)
			if !est.Symmetric() {
				asymmetric++
			}
		}
	}
	assert.Equal(t, 174, total)
	assert.Equal(t, 14, asymmetric)

	for _, name := range []string{"f_2000^143", "f_2000^143x217", "f_2000^217"} {
		analyses, err := tbl.Analyses(name)
		require.NoError(t, err)
		assert.Equal(t, []string{TTLowE, TTTEEELowE, TTTEEELowELensing, TTTEEELowELensingBAO}, analyses, name)
	}
}

func TestUnits_OnePerParameter(t *testing.T) {
	tbl := loadLCDM(t)

	cases := map[string]string{
		"H_0":         "km/s/Mpc",
		"Age":         "Gyr",
		"r_*":         "Mpc",
		"r_drag":      "Mpc",
		"k_D":         "1/Mpc",
		"k_eq":        "1/Mpc",
		"Omega_b__h2": "adimensional",
		"tau":         "adimensional",
	}
	for name, want := range cases {
		got, err := tbl.Units(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

// =============================================================================
// Lookups
// =============================================================================

func TestEstimate_Symmetric(t *testing.T) {
	tbl := loadLCDM(t)

	est, err := tbl.Estimate("H_0", TTTEEELowELensingBAO)
	require.NoError(t, err)
	assert.Equal(t, 67.66, est.Value)
	assert.Equal(t, [2]float64{0.42, 0.42}, est.Limits68)
	assert.True(t, est.Symmetric())
}

func TestEstimate_Asymmetric(t *testing.T) {
	tbl := loadLCDM(t)

	est, err := tbl.Estimate("tau", TTTEEELowE)
	require.NoError(t, err)
	assert.Equal(t, 0.0544, est.Value)
	assert.Equal(t, [2]float64{0.0081, 0.007}, est.Limits68)
	assert.False(t, est.Symmetric())
}

func TestEstimate_SmallDeltasParseExactly(t *testing.T) {
	tbl := loadLCDM(t)

	est, err := tbl.Estimate("k_eq", TTTEEELowE)
	require.NoError(t, err)
	assert.Equal(t, 0.010398, est.Value)
	assert.Equal(t, [2]float64{0.000094, 0.000094}, est.Limits68)
}

func TestLookup_ParameterNotFound(t *testing.T) {
	tbl := loadLCDM(t)

	_, err := tbl.Units("nonexistent_param")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParameterNotFound))

	var pnf *ParameterNotFoundError
	require.True(t, errors.As(err, &pnf))
	assert.Equal(t, "nonexistent_param", pnf.Name)

	_, err = tbl.Estimate("nonexistent_param", TTLowE)
	assert.ErrorIs(t, err, ErrParameterNotFound)
	_, err = tbl.Analyses("nonexistent_param")
	assert.ErrorIs(t, err, ErrParameterNotFound)
	_, err = tbl.Entry("nonexistent_param")
	assert.ErrorIs(t, err, ErrParameterNotFound)
}

func TestLookup_AnalysisVariantNotFound(t *testing.T) {
	tbl := loadLCDM(t)

	_, err := tbl.Estimate("f_2000^143", EELowE)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAnalysisVariantNotFound))
	assert.False(t, errors.Is(err, ErrParameterNotFound))

	var avnf *AnalysisVariantNotFoundError
	require.True(t, errors.As(err, &avnf))
	assert.Equal(t, "f_2000^143", avnf.Name)
	assert.Equal(t, EELowE, avnf.Analysis)
}

func TestLookup_UnitsKeyIsNotAVariant(t *testing.T) {
	tbl := loadLCDM(t)

	_, err := tbl.Estimate("H_0", "units")
	assert.ErrorIs(t, err, ErrAnalysisVariantNotFound)
}

// =============================================================================
// Immutability: accessors hand out copies
// =============================================================================

func TestEntry_ReturnsCopy(t *testing.T) {
	tbl := loadLCDM(t)

	e, err := tbl.Entry("H_0")
	require.NoError(t, err)
	assert.Equal(t, "km/s/Mpc", e.Units)
	assert.Len(t, e.Analyses, 6)

	e.Analyses[TTLowE] = Estimate{Value: -1}
	delete(e.Analyses, EELowE)

	est, err := tbl.Estimate("H_0", TTLowE)
	require.NoError(t, err)
	assert.Equal(t, 66.88, est.Value)
	_, err = tbl.Estimate("H_0", EELowE)
	assert.NoError(t, err)
}

func TestNames_ReturnsCopy(t *testing.T) {
	tbl := loadLCDM(t)

	names := tbl.Names()
	names[0] = "mutated"
	assert.Equal(t, "Omega_b__h2", tbl.Names()[0])
}

func TestVariants_ReturnsCopy(t *testing.T) {
	v := Variants()
	require.Len(t, v, 6)
	v[0] = "mutated"
	assert.Equal(t, TTLowE, Variants()[0])
	assert.True(t, KnownVariant(TTTEEELowELensingBAO))
	assert.False(t, KnownVariant("units"))
}

func TestDocument_RebuildsEqualTable(t *testing.T) {
	tbl := loadLCDM(t)

	rebuilt, err := New(tbl.Document())
	require.NoError(t, err)
	if diff := cmp.Diff(tbl.Document(), rebuilt.Document()); diff != "" {
		t.Errorf("rebuilt table differs (-want +got):\n%s", diff)
	}
}

// =============================================================================
// Validation
// =============================================================================

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty document", ``},
		{"no model", `
parameters:
  - name: a
    units: u
    analyses:
      "TT+lowE": {value: 1, limits68: [0.1, 0.1]}
`},
		{"no parameters", `model: lcdm`},
		{"unknown field", `
model: lcdm
colour: red
parameters:
  - name: a
    units: u
    analyses:
      "TT+lowE": {value: 1, limits68: [0.1, 0.1]}
`},
		{"duplicate parameter", `
model: lcdm
parameters:
  - name: a
    units: u
    analyses:
      "TT+lowE": {value: 1, limits68: [0.1, 0.1]}
  - name: a
    units: u
    analyses:
      "TT+lowE": {value: 2, limits68: [0.1, 0.1]}
`},
		{"missing units", `
model: lcdm
parameters:
  - name: a
    analyses:
      "TT+lowE": {value: 1, limits68: [0.1, 0.1]}
`},
		{"no analyses", `
model: lcdm
parameters:
  - name: a
    units: u
`},
		{"unknown variant", `
model: lcdm
parameters:
  - name: a
    units: u
    analyses:
      "TT+highE": {value: 1, limits68: [0.1, 0.1]}
`},
		{"units as variant", `
model: lcdm
parameters:
  - name: a
    units: u
    analyses:
      "units": {value: 1, limits68: [0.1, 0.1]}
`},
		{"negative delta", `
model: lcdm
parameters:
  - name: a
    units: u
    analyses:
      "TT+lowE": {value: 1, limits68: [-0.1, 0.1]}
`},
		{"one limit", `
model: lcdm
parameters:
  - name: a
    units: u
    analyses:
      "TT+lowE": {value: 1, limits68: [0.1]}
`},
		{"not finite", `
model: lcdm
parameters:
  - name: a
    units: u
    analyses:
      "TT+lowE": {value: .nan, limits68: [0.1, 0.1]}
`},
		{"trailing document", `
model: lcdm
parameters:
  - name: a
    units: u
    analyses:
      "TT+lowE": {value: 1, limits68: [0.1, 0.1]}
---
model: other
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestParse_MinimalTable(t *testing.T) {
	tbl, err := Parse([]byte(`
model: lcdm
source: test
version: "1"
parameters:
  - name: a
    units: u
    analyses:
      "TE+lowE": {value: 1.5, limits68: [0.1, 0.2]}
`))
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	est, err := tbl.Estimate("a", TELowE)
	require.NoError(t, err)
	assert.Equal(t, Estimate{Value: 1.5, Limits68: [2]float64{0.1, 0.2}}, est)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	data, err := tables.FS.ReadFile(tables.LCDM)
	require.NoError(t, err)
	path := filepath.Join(dir, "lcdm.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 30, tbl.Len())

	_, err = LoadFile(filepath.Join(dir, "lcdm.json"))
	assert.ErrorContains(t, err, "only YAML supported")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
