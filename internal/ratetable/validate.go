package ratetable

import (
	"fmt"
	"strconv"

	"netto-engine/internal/model"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{model.ErrInvalidTable}, args...)...)
}

func validateYear(recordYear, year int) error {
	if recordYear < FirstYear || recordYear > LastYear {
		return invalid("year %d outside %d-%d", recordYear, FirstYear, LastYear)
	}
	if recordYear != year {
		return invalid("file for %d holds year %d", year, recordYear)
	}
	return nil
}

func validateRate(field string, v float64) error {
	if v < 0 || v > 1 {
		return invalid("%s must be within [0, 1], got %v", field, v)
	}
	return nil
}

func validatePositive(field string, v float64) error {
	if v <= 0 {
		return invalid("%s must be positive, got %v", field, v)
	}
	return nil
}

func validateCurve(c model.TaxCurve, year int) error {
	if err := validateYear(c.Year, year); err != nil {
		return err
	}
	if len(c.Brackets) != model.BracketCount {
		return invalid("tax curve must have exactly %d brackets, got %d", model.BracketCount, len(c.Brackets))
	}

	prev := 0.0
	for i := 0; i < model.BracketCount; i++ {
		key := strconv.Itoa(i)
		b, ok := c.Brackets[key]
		if !ok {
			return invalid("bracket %q missing", key)
		}
		if err := validatePositive("bracket "+key+" step", b.Step); err != nil {
			return err
		}
		if err := validateRate("bracket "+key+" rate", b.Rate); err != nil {
			return err
		}
		if b.Const != nil && len(b.Const) == 0 {
			return invalid("bracket %s const cannot be empty", key)
		}
		if b.Step <= prev {
			return invalid("bracket %s step %v not above previous %v", key, b.Step, prev)
		}
		prev = b.Step
	}
	return nil
}

func validateEntry(name string, e model.SocialSecurityEntry) error {
	if err := validatePositive(name+" limit", e.Limit); err != nil {
		return err
	}
	if err := validateRate(name+" rate", e.Rate); err != nil {
		return err
	}
	if e.Extra != nil {
		return validateRate(name+" extra", *e.Extra)
	}
	return nil
}

func validateSocialSecurity(s model.SocialSecurity, year int) error {
	if err := validateYear(s.Year, year); err != nil {
		return err
	}
	entries := []struct {
		name  string
		entry model.SocialSecurityEntry
	}{
		{"pension", s.Pension},
		{"unemployment", s.Unemployment},
		{"health", s.Health},
		{"nursing", s.Nursing},
	}
	for _, e := range entries {
		if err := validateEntry(e.name, e.entry); err != nil {
			return err
		}
	}
	return nil
}

func validateSoli(s model.SoliParameters, year int) error {
	if err := validateYear(s.Year, year); err != nil {
		return err
	}
	if err := validatePositive("start_taxable_income", s.StartTaxableIncome); err != nil {
		return err
	}
	if err := validateRate("start_fraction", s.StartFraction); err != nil {
		return err
	}
	return validateRate("end_rate", s.EndRate)
}

func validatePensionFactor(p model.PensionFactor, year int) error {
	if err := validateYear(p.Year, year); err != nil {
		return err
	}
	return validateRate("factor", p.Factor)
}
