// Package countries provides ISO-3166 country code and name mappings.
//
// Every country is a Country value held by a Registry. The default registry
// is built once from the embedded iso3166.txt table and is read-only after
// that; the package-level functions query it.
package countries

import (
	"slices"
	"strconv"
	"strings"
)

// Country is one ISO 3166-1 entry. Values are immutable and only created by
// Registry.Register, so every non-zero Country has well-formed codes.
type Country struct {
	name     string
	alpha2   string
	alpha3   string
	numeric  string
	cont     Continent
	codeType CodeType
}

// Name returns the ISO short name.
func (c Country) Name() string { return c.name }

// Alpha2 returns the two-letter code, recommended as the general purpose code.
func (c Country) Alpha2() string { return c.alpha2 }

// Alpha3 returns the three-letter code, usually closer to the country name.
func (c Country) Alpha3() string { return c.alpha3 }

// Numeric returns the zero-padded three-digit numeric code.
func (c Country) Numeric() string { return c.numeric }

// NumericInt returns the numeric code as an integer, or -1 for the zero Country.
func (c Country) NumericInt() int {
	n, err := strconv.Atoi(c.numeric)
	if err != nil {
		return -1
	}
	return n
}

// Continent returns the continent the country belongs to.
func (c Country) Continent() Continent { return c.cont }

// CodeType returns the assignment status of the codes.
func (c Country) CodeType() CodeType { return c.codeType }

// IsZero reports whether c is the unset Country returned by failed lookups.
func (c Country) IsZero() bool {
	return c.numeric == ""
}

// Equal reports whether c and other denote the same country. The numeric
// code is the identity; the other fields are not compared.
func (c Country) Equal(other Country) bool {
	return c.numeric == other.numeric
}

// Compare orders countries by two-letter code, ignoring case.
func (c Country) Compare(other Country) int {
	return strings.Compare(strings.ToUpper(c.alpha2), strings.ToUpper(other.alpha2))
}

// FormatAs returns the field selected by f. FormatAuto yields the
// three-letter code.
func (c Country) FormatAs(f Format) string {
	switch f {
	case FormatName:
		return c.name
	case FormatAlpha2:
		return c.alpha2
	case FormatNumeric:
		return c.numeric
	default:
		return c.alpha3
	}
}

// String returns the three-letter code.
func (c Country) String() string {
	return c.FormatAs(FormatAlpha3)
}

// SortByAlpha2 sorts list in place by two-letter code.
func SortByAlpha2(list []Country) {
	slices.SortStableFunc(list, Country.Compare)
}

// SortByNumeric sorts list in place by numeric code.
func SortByNumeric(list []Country) {
	slices.SortStableFunc(list, func(a, b Country) int {
		return strings.Compare(a.numeric, b.numeric)
	})
}

// SortByName sorts list in place by name using byte order.
func SortByName(list []Country) {
	slices.SortStableFunc(list, func(a, b Country) int {
		return strings.Compare(a.name, b.name)
	})
}
