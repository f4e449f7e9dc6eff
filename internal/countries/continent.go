package countries

import (
	"fmt"
	"strings"
)

// Continent is one of the seven continents a country is assigned to.
type Continent int

const (
	Africa Continent = iota
	Antarctica
	Asia
	Europe
	NorthAmerica
	Oceania
	SouthAmerica
)

var continentCodes = [...]string{
	Africa:       "AF",
	Antarctica:   "AN",
	Asia:         "AS",
	Europe:       "EU",
	NorthAmerica: "NA",
	Oceania:      "OC",
	SouthAmerica: "SA",
}

var continentNames = [...]string{
	Africa:       "Africa",
	Antarctica:   "Antarctica",
	Asia:         "Asia",
	Europe:       "Europe",
	NorthAmerica: "North America",
	Oceania:      "Oceania",
	SouthAmerica: "South America",
}

// Continents returns all continents in declaration order.
func Continents() []Continent {
	return []Continent{Africa, Antarctica, Asia, Europe, NorthAmerica, Oceania, SouthAmerica}
}

// Valid reports whether c is one of the declared continents.
func (c Continent) Valid() bool {
	return c >= Africa && c <= SouthAmerica
}

// Code returns the two-letter continent code (AF, AN, AS, EU, NA, OC, SA).
func (c Continent) Code() string {
	if !c.Valid() {
		return ""
	}
	return continentCodes[c]
}

// String returns the English continent name.
func (c Continent) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Continent(%d)", int(c))
	}
	return continentNames[c]
}

// ParseContinent accepts a two-letter continent code or an English name,
// case-insensitively. Spaces in names are optional ("northamerica").
func ParseContinent(s string) (Continent, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, c := range Continents() {
		if v == continentCodes[c] {
			return c, nil
		}
		name := strings.ToUpper(continentNames[c])
		if v == name || v == strings.ReplaceAll(name, " ", "") {
			return c, nil
		}
	}
	return 0, newError(CodeInvalidArgument, "continent", s, nil)
}
