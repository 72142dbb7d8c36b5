package model

// Breakdown carries every intermediate amount of one net-income calculation.
// All amounts are yearly euros.
type Breakdown struct {
	Year                     int     `json:"year"`
	Salary                   float64 `json:"salary"`
	Deductibles              float64 `json:"deductibles"`
	DeductibleSocialSecurity float64 `json:"deductible_social_security"`
	TaxableIncome            float64 `json:"taxable_income"`
	IncomeTax                float64 `json:"income_tax"`
	Soli                     float64 `json:"soli"`
	ChurchTax                float64 `json:"church_tax"`
	SocialSecurity           float64 `json:"social_security"`
	NetIncome                float64 `json:"net_income"`
}

// Deductions is everything subtracted from the salary.
func (b *Breakdown) Deductions() float64 {
	return b.IncomeTax + b.Soli + b.ChurchTax + b.SocialSecurity
}

// Monthly returns b with every amount divided by twelve.
func (b *Breakdown) Monthly() *Breakdown {
	m := *b
	for _, v := range []*float64{
		&m.Salary, &m.Deductibles, &m.DeductibleSocialSecurity, &m.TaxableIncome,
		&m.IncomeTax, &m.Soli, &m.ChurchTax, &m.SocialSecurity, &m.NetIncome,
	} {
		*v /= 12
	}
	return &m
}
