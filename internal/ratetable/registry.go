package ratetable

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"netto-engine/internal/model"
)

//go:embed data
var embedded embed.FS

var log = logrus.WithField("module", "ratetable")

// Table kinds, one directory each.
const (
	KindTaxCurve       = "tax_curves"
	KindSocialSecurity = "social_security"
	KindSoli           = "soli"
	KindPensionFactor  = "pension_factors"
)

// Years a table may describe. Missing data from FirstUnpublishedYear on is
// expected to be published later.
const (
	FirstYear            = 2018
	LastYear             = 2030
	FirstUnpublishedYear = 2026
)

// DataDirEnv names an optional directory searched before the embedded tables.
const DataDirEnv = "NETTO_DATA_DIR"

type Status int

const (
	Found Status = iota
	NotFound
	NotImplemented
	Invalid
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case NotImplemented:
		return "not implemented"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// Result is the outcome of a Lookup. Tables is set only when Status is Found;
// Err is set otherwise.
type Result struct {
	Status Status
	Tables *model.YearTables
	Err    error
}

// Registry loads and caches per-year rate tables. It is safe for concurrent use.
type Registry struct {
	dir   string
	files fs.FS
	cache sync.Map // year -> *model.YearTables
}

type Option func(*Registry)

// WithDir makes the registry read <dir>/<kind>/<year>.json before falling back
// to the embedded tables.
func WithDir(dir string) Option {
	return func(r *Registry) { r.dir = dir }
}

// WithFS replaces the embedded tables.
func WithFS(fsys fs.FS) Option {
	return func(r *Registry) { r.files = fsys }
}

func New(opts ...Option) *Registry {
	sub, _ := fs.Sub(embedded, "data")
	r := &Registry{files: sub}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, honouring NETTO_DATA_DIR.
func Default() *Registry {
	defaultOnce.Do(func() {
		dir := os.Getenv(DataDirEnv)
		if dir != "" {
			log.Infof("reading rate tables from %s before embedded data", dir)
		}
		defaultRegistry = New(WithDir(dir))
	})
	return defaultRegistry
}

// Tables returns the tables for year or a *model.DataError.
func (r *Registry) Tables(year int) (*model.YearTables, error) {
	res := r.Lookup(year)
	if res.Status != Found {
		return nil, res.Err
	}
	return res.Tables, nil
}

func (r *Registry) Lookup(year int) Result {
	if t, ok := r.cache.Load(year); ok {
		return Result{Status: Found, Tables: t.(*model.YearTables)}
	}

	t, err := r.load(year)
	if err != nil {
		status := NotFound
		switch {
		case errors.Is(err, model.ErrNotImplemented):
			status = NotImplemented
		case errors.Is(err, model.ErrInvalidTable):
			status = Invalid
		}
		return Result{Status: status, Err: err}
	}

	actual, _ := r.cache.LoadOrStore(year, t)
	log.Debugf("rate tables for %d loaded", year)
	return Result{Status: Found, Tables: actual.(*model.YearTables)}
}

// Years lists every year with a complete set of tables, ascending.
func (r *Registry) Years() []int {
	return lo.Filter(lo.RangeFrom(FirstYear, LastYear-FirstYear+1), func(year int, _ int) bool {
		return r.Lookup(year).Status == Found
	})
}

func (r *Registry) load(year int) (*model.YearTables, error) {
	var curve model.TaxCurve
	if err := r.decode(KindTaxCurve, year, &curve); err != nil {
		return nil, err
	}
	var ss model.SocialSecurity
	if err := r.decode(KindSocialSecurity, year, &ss); err != nil {
		return nil, err
	}
	var soli model.SoliParameters
	if err := r.decode(KindSoli, year, &soli); err != nil {
		return nil, err
	}
	var pf model.PensionFactor
	if err := r.decode(KindPensionFactor, year, &pf); err != nil {
		return nil, err
	}

	checks := []struct {
		kind string
		err  error
	}{
		{KindTaxCurve, validateCurve(curve, year)},
		{KindSocialSecurity, validateSocialSecurity(ss, year)},
		{KindSoli, validateSoli(soli, year)},
		{KindPensionFactor, validatePensionFactor(pf, year)},
	}
	for _, c := range checks {
		if c.err != nil {
			return nil, &model.DataError{Kind: c.kind, Year: year, Err: c.err}
		}
	}

	t := &model.YearTables{
		Year:           year,
		SocialSecurity: ss,
		Soli:           soli,
		PensionFactor:  pf.Factor,
	}
	for i := range t.Brackets {
		t.Brackets[i] = curve.Brackets[strconv.Itoa(i)]
	}
	return t, nil
}

func (r *Registry) decode(kind string, year int, v any) error {
	data, err := r.read(kind, year)
	if err != nil {
		return &model.DataError{Kind: kind, Year: year, Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &model.DataError{Kind: kind, Year: year, Err: fmt.Errorf("%w: %v", model.ErrInvalidTable, err)}
	}
	return nil
}

// read returns the raw file, or ErrYearNotFound / ErrNotImplemented when
// neither the override directory nor the embedded data has it.
func (r *Registry) read(kind string, year int) ([]byte, error) {
	name := strconv.Itoa(year) + ".json"

	if r.dir != "" {
		data, err := os.ReadFile(filepath.Join(r.dir, kind, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	data, err := fs.ReadFile(r.files, path.Join(kind, name))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if year >= FirstUnpublishedYear && year <= LastYear {
		return nil, model.ErrNotImplemented
	}
	return nil, model.ErrYearNotFound
}
