package countries

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed iso3166.txt
var iso3166Data string

var (
	defaultRegistry *Registry
	once            sync.Once
)

// NewDefaultRegistry returns a new registry holding the embedded ISO 3166-1
// table. Callers that add their own user-assigned codes start from this.
func NewDefaultRegistry(opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	if _, err := r.Load(strings.NewReader(iso3166Data)); err != nil {
		return nil, fmt.Errorf("load embedded table: %w", err)
	}
	return r, nil
}

// Default returns the shared registry built from the embedded table on
// first use. It is never modified afterwards.
func Default() *Registry {
	once.Do(func() {
		r, err := NewDefaultRegistry()
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// All returns all countries of the default registry in table order.
func All() []Country { return Default().All() }

// Count returns the number of countries in the default registry.
func Count() int { return Default().Len() }

// LookupName finds a country in the default registry by exact name.
func LookupName(name string) (Country, bool) { return Default().LookupName(name) }

// LookupAlpha2 finds a country in the default registry by two-letter code.
func LookupAlpha2(code string) (Country, bool) { return Default().LookupAlpha2(code) }

// LookupAlpha3 finds a country in the default registry by three-letter code.
func LookupAlpha3(code string) (Country, bool) { return Default().LookupAlpha3(code) }

// LookupNumeric finds a country in the default registry by three-digit code.
func LookupNumeric(code string) (Country, bool) { return Default().LookupNumeric(code) }

// LookupNumericInt finds a country in the default registry by integer code.
func LookupNumericInt(code int) (Country, bool) { return Default().LookupNumericInt(code) }

// GetByNumeric finds a country in the default registry or fails with CodeNotFound.
func GetByNumeric(code int) (Country, error) { return Default().GetByNumeric(code) }

// LookupCode finds a country in the default registry by two- or three-letter code.
func LookupCode(code string) (Country, bool, error) { return Default().LookupCode(code) }

// Parse resolves s against the default registry.
func Parse(s string, format ...Format) (Country, error) { return Default().Parse(s, format...) }

// TryParse resolves s against the default registry without an error.
func TryParse(s string, format ...Format) (Country, bool) { return Default().TryParse(s, format...) }

// MustAlpha2 returns the country with the two-letter code from the default
// registry. It panics if there is none; use it for codes fixed at compile
// time, such as MustAlpha2("SK").
func MustAlpha2(code string) Country {
	c, ok := LookupAlpha2(code)
	if !ok {
		panic(newError(CodeNotFound, "two-letter code", code, nil))
	}
	return c
}

// MustAlpha3 is MustAlpha2 for three-letter codes.
func MustAlpha3(code string) Country {
	c, ok := LookupAlpha3(code)
	if !ok {
		panic(newError(CodeNotFound, "three-letter code", code, nil))
	}
	return c
}

// MustParse is Parse panicking on failure.
func MustParse(s string, format ...Format) Country {
	c, err := Parse(s, format...)
	if err != nil {
		panic(err)
	}
	return c
}
