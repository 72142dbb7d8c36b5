package model

// Bracket indexes of a TaxCurve.
const (
	BracketBasic = iota
	BracketProgressionLow
	BracketProgressionHigh
	BracketTop
	BracketCount
)

type TaxBracket struct {
	Step  float64   `json:"step"`
	Rate  float64   `json:"rate"`
	Const []float64 `json:"const,omitempty"`
}

// TaxCurve is the four-bracket income tax curve of one year. Brackets are
// keyed "0".."3" on disk.
type TaxCurve struct {
	Year     int                   `json:"year"`
	Brackets map[string]TaxBracket `json:"brackets"`
}

type SocialSecurityEntry struct {
	Limit float64  `json:"limit"`
	Rate  float64  `json:"rate"`
	Extra *float64 `json:"extra,omitempty"`
}

// ExtraRate returns Extra or 0 when the entry has none.
func (e SocialSecurityEntry) ExtraRate() float64 {
	if e.Extra == nil {
		return 0
	}
	return *e.Extra
}

type SocialSecurity struct {
	Year         int                 `json:"year"`
	Pension      SocialSecurityEntry `json:"pension"`
	Unemployment SocialSecurityEntry `json:"unemployment"`
	Health       SocialSecurityEntry `json:"health"`
	Nursing      SocialSecurityEntry `json:"nursing"`
}

type SoliParameters struct {
	Year               int     `json:"year"`
	StartTaxableIncome float64 `json:"start_taxable_income"`
	StartFraction      float64 `json:"start_fraction"`
	EndRate            float64 `json:"end_rate"`
}

type PensionFactor struct {
	Year   int     `json:"year"`
	Factor float64 `json:"factor"`
}

// YearTables bundles every table needed for one tax year. Brackets are
// ordered by index. A loaded YearTables is shared and must not be modified.
type YearTables struct {
	Year           int                      `json:"year"`
	Brackets       [BracketCount]TaxBracket `json:"brackets"`
	SocialSecurity SocialSecurity           `json:"social_security"`
	Soli           SoliParameters           `json:"soli"`
	PensionFactor  float64                  `json:"pension_factor"`
}

// Steps returns the bracket thresholds, doubled for married couples.
func (t *YearTables) Steps(married bool) [BracketCount]float64 {
	var steps [BracketCount]float64
	for i, b := range t.Brackets {
		steps[i] = b.Step
		if married {
			steps[i] *= 2
		}
	}
	return steps
}
