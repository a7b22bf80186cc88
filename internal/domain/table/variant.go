package table

// Analysis-variant keys, in the column order of the published table.
// TT, TE and EE are the CMB temperature and polarization power spectra,
// lowE the low-multipole EE likelihood.
const (
	TTLowE               = "TT+lowE"
	TELowE               = "TE+lowE"
	EELowE               = "EE+lowE"
	TTTEEELowE           = "TT,TE,EE+lowE"
	TTTEEELowELensing    = "TT,TE,EE+lowE+lensing"
	TTTEEELowELensingBAO = "TT,TE,EE+lowE+lensing+BAO"
)

// unitsKey is reserved in the published layout for the unit label and can
// never name an analysis variant.
const unitsKey = "units"

var variants = []string{
	TTLowE,
	TELowE,
	EELowE,
	TTTEEELowE,
	TTTEEELowELensing,
	TTTEEELowELensingBAO,
}

var variantRank = func() map[string]int {
	m := make(map[string]int, len(variants))
	for i, v := range variants {
		m[v] = i
	}
	return m
}()

// Variants returns every known analysis-variant key in canonical order.
func Variants() []string {
	out := make([]string, len(variants))
	copy(out, variants)
	return out
}

// KnownVariant reports whether key is one of the analysis-variant keys.
func KnownVariant(key string) bool {
	_, ok := variantRank[key]
	return ok
}
