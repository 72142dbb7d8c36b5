package socialsecurity

var (
	Pension      Category = pension{}
	Unemployment Category = unemployment{}
	Health       Category = health{}
	Nursing      Category = nursing{}
)

// all is the summation order of Total.
var all = []Category{Pension, Unemployment, Health, Nursing}

var registry = map[string]Category{
	Pension.Name():      Pension,
	Unemployment.Name(): Unemployment,
	Health.Name():       Health,
	Nursing.Name():      Nursing,
}

func Get(name string) (Category, bool) {
	c, ok := registry[name]
	return c, ok
}

// All returns every category in a fixed order.
func All() []Category {
	return append([]Category(nil), all...)
}
