package socialsecurity

import "netto-engine/internal/model"

// Category is one branch of statutory social insurance.
type Category interface {
	Name() string
	// Entry selects the category's record from a year's table.
	Entry(ss *model.SocialSecurity) model.SocialSecurityEntry
	// Extra is the employee's rate on top of the published base rate.
	Extra(entry model.SocialSecurityEntry, cfg model.TaxConfig) float64
}

type pension struct{}

func (pension) Name() string { return "pension" }

func (pension) Entry(ss *model.SocialSecurity) model.SocialSecurityEntry { return ss.Pension }

func (pension) Extra(model.SocialSecurityEntry, model.TaxConfig) float64 { return 0 }

type unemployment struct{}

func (unemployment) Name() string { return "unemployment" }

func (unemployment) Entry(ss *model.SocialSecurity) model.SocialSecurityEntry {
	return ss.Unemployment
}

func (unemployment) Extra(model.SocialSecurityEntry, model.TaxConfig) float64 { return 0 }

// health splits the insurer's additional contribution with the employer. The
// table's own extra is the published average and is not charged.
type health struct{}

func (health) Name() string { return "health" }

func (health) Entry(ss *model.SocialSecurity) model.SocialSecurityEntry { return ss.Health }

func (health) Extra(_ model.SocialSecurityEntry, cfg model.TaxConfig) float64 {
	return cfg.ExtraHealthInsurance() / 2
}

// nursing charges the childless surcharge.
type nursing struct{}

func (nursing) Name() string { return "nursing" }

func (nursing) Entry(ss *model.SocialSecurity) model.SocialSecurityEntry { return ss.Nursing }

func (nursing) Extra(entry model.SocialSecurityEntry, cfg model.TaxConfig) float64 {
	if cfg.HasChildren() {
		return 0
	}
	return entry.ExtraRate()
}
