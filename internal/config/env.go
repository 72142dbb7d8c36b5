// Package config builds a TaxConfig from the environment, .env files and YAML
// profiles.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"netto-engine/internal/model"
)

var log = logrus.WithField("module", "config")

const (
	EnvYear                 = "YEAR"
	EnvHasChildren          = "HAS_CHILDREN"
	EnvIsMarried            = "IS_MARRIED"
	EnvExtraHealthInsurance = "EXTRA_HEALTH_INSURANCE"
	EnvChurchTax            = "CHURCH_TAX"
)

// LoadDotEnv adds the variables of files (".env" by default) to the
// environment without overriding variables already set. Missing files are
// skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugf("%s not found, relying on OS environment variables", f)
				continue
			}
			return err
		}
		existing = append(existing, f)
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// EnvOptions returns an option for every tax variable set in the
// environment. Unparsable values are skipped with a warning.
func EnvOptions() []model.Option {
	var opts []model.Option
	if v, ok := getEnvAsInt(EnvYear); ok {
		opts = append(opts, model.WithYear(v))
	}
	if v, ok := getEnvAsBool(EnvHasChildren); ok {
		opts = append(opts, model.WithChildren(v))
	}
	if v, ok := getEnvAsBool(EnvIsMarried); ok {
		opts = append(opts, model.WithMarried(v))
	}
	if v, ok := getEnvAsFloat(EnvExtraHealthInsurance); ok {
		opts = append(opts, model.WithExtraHealthInsurance(v))
	}
	if v, ok := getEnvAsFloat(EnvChurchTax); ok {
		opts = append(opts, model.WithChurchTax(v))
	}
	return opts
}

// FromEnv loads .env and builds a TaxConfig from the environment on top of
// the defaults, then applies overrides. A value out of range is an error.
func FromEnv(overrides ...model.Option) (model.TaxConfig, error) {
	if err := LoadDotEnv(); err != nil {
		log.Warnf("error loading .env file: %v", err)
	}
	return model.NewTaxConfig(append(EnvOptions(), overrides...)...)
}

func getEnvAsInt(key string) (int, bool) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Warnf("invalid integer value for %s (%q), using default", key, s)
		return 0, false
	}
	return v, true
}

func getEnvAsBool(key string) (bool, bool) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		log.Warnf("invalid boolean value for %s (%q), using default", key, s)
		return false, false
	}
	return v, true
}

func getEnvAsFloat(key string) (float64, bool) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Warnf("invalid number value for %s (%q), using default", key, s)
		return 0, false
	}
	return v, true
}
