package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"netto-engine/internal/model"
)

// Profile is a YAML tax profile. Keys left out keep their previous value.
type Profile struct {
	Year                 *int     `yaml:"year"`
	Married              *bool    `yaml:"married"`
	Children             *bool    `yaml:"children"`
	ExtraHealthInsurance *float64 `yaml:"extra_health_insurance"`
	ChurchTax            *float64 `yaml:"church_tax"`
}

// LoadProfile reads a profile; unknown keys are rejected.
func LoadProfile(path string) (*Profile, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.UnmarshalStrict(file, &p); err != nil {
		return nil, fmt.Errorf("%w: profile %s: %v", model.ErrInvalidConfig, path, err)
	}
	log.Debugf("profile %s loaded", path)
	return &p, nil
}

func (p *Profile) Options() []model.Option {
	var opts []model.Option
	if p.Year != nil {
		opts = append(opts, model.WithYear(*p.Year))
	}
	if p.Married != nil {
		opts = append(opts, model.WithMarried(*p.Married))
	}
	if p.Children != nil {
		opts = append(opts, model.WithChildren(*p.Children))
	}
	if p.ExtraHealthInsurance != nil {
		opts = append(opts, model.WithExtraHealthInsurance(*p.ExtraHealthInsurance))
	}
	if p.ChurchTax != nil {
		opts = append(opts, model.WithChurchTax(*p.ChurchTax))
	}
	return opts
}

// FromFile builds a TaxConfig from the profile at path on top of base, or of
// the defaults when base is empty.
func FromFile(path string, base ...model.Option) (model.TaxConfig, error) {
	p, err := LoadProfile(path)
	if err != nil {
		return model.TaxConfig{}, err
	}
	opts := make([]model.Option, 0, len(base)+5)
	opts = append(append(opts, base...), p.Options()...)
	return model.NewTaxConfig(opts...)
}
