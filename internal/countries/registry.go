package countries

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	alpha2Pattern  = regexp.MustCompile(`^[A-Z]{2}$`)
	alpha3Pattern  = regexp.MustCompile(`^[A-Z]{3}$`)
	numericPattern = regexp.MustCompile(`^[0-9]{3}$`)
)

// Registry holds countries in registration order together with an index per
// identifying field. Writes and reads are serialized through an RWMutex, so
// a reader never sees an index entry that points past the entries slice.
type Registry struct {
	mu        sync.RWMutex
	entries   []Country
	byAlpha2  map[string]int
	byAlpha3  map[string]int
	byNumeric map[string]int
	byName    map[string]int
	logger    *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries:   make([]Country, 0, 256),
		byAlpha2:  make(map[string]int),
		byAlpha3:  make(map[string]int),
		byNumeric: make(map[string]int),
		byName:    make(map[string]int),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register validates and adds a country. The code type defaults to
// OfficiallyAssigned.
//
// Registering a country identical to an existing one returns the existing
// value. A country sharing its numeric code, three-letter code, two-letter
// code or name with a different entry fails with CodeDuplicateKey.
func (r *Registry) Register(name, alpha2, alpha3, numeric string, continent Continent, codeType ...CodeType) (Country, error) {
	ct := OfficiallyAssigned
	if len(codeType) > 0 {
		ct = codeType[0]
	}

	c, err := newCountry(name, alpha2, alpha3, numeric, continent, ct)
	if err != nil {
		return Country{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(c)
}

// register adds a validated country. Must be called with mu held.
func (r *Registry) register(c Country) (Country, error) {
	if i, ok := r.byNumeric[c.numeric]; ok {
		return r.existing(i, c, "numeric code", c.numeric)
	}
	if i, ok := r.byAlpha3[c.alpha3]; ok {
		return r.existing(i, c, "three-letter code", c.alpha3)
	}
	if i, ok := r.byAlpha2[c.alpha2]; ok {
		return r.existing(i, c, "two-letter code", c.alpha2)
	}
	if i, ok := r.byName[c.name]; ok {
		return r.existing(i, c, "name", c.name)
	}

	pos := len(r.entries)
	r.entries = append(r.entries, c)
	r.byNumeric[c.numeric] = pos
	r.byAlpha3[c.alpha3] = pos
	r.byAlpha2[c.alpha2] = pos
	r.byName[c.name] = pos

	r.logger.Debug("registered country",
		zap.String("alpha2", c.alpha2),
		zap.String("alpha3", c.alpha3),
		zap.String("numeric", c.numeric),
		zap.Stringer("code_type", c.codeType),
	)
	return c, nil
}

// existing resolves a key hit during Register. Must be called with mu held.
func (r *Registry) existing(pos int, c Country, key, value string) (Country, error) {
	prev := r.entries[pos]
	if prev == c {
		return prev, nil
	}
	r.logger.Warn("country registration conflict",
		zap.String("key", key),
		zap.String("value", value),
		zap.String("existing", prev.alpha2),
		zap.String("rejected", c.alpha2),
	)
	return Country{}, newError(CodeDuplicateKey, key, value,
		fmt.Errorf("already registered to %s (%s)", prev.alpha2, prev.name))
}

func newCountry(name, alpha2, alpha3, numeric string, continent Continent, ct CodeType) (Country, error) {
	switch {
	case strings.TrimSpace(name) == "":
		return Country{}, newError(CodeInvalidArgument, "name", name, nil)
	case !alpha2Pattern.MatchString(alpha2):
		return Country{}, newError(CodeInvalidFormat, "two-letter code", alpha2, nil)
	case !alpha3Pattern.MatchString(alpha3):
		return Country{}, newError(CodeInvalidFormat, "three-letter code", alpha3, nil)
	case !numericPattern.MatchString(numeric):
		return Country{}, newError(CodeInvalidFormat, "numeric code", numeric, nil)
	case !continent.Valid():
		return Country{}, newError(CodeInvalidArgument, "continent", continent.String(), nil)
	case !ct.Valid():
		return Country{}, newError(CodeInvalidArgument, "code type", ct.String(), nil)
	}
	return Country{
		name:     name,
		alpha2:   alpha2,
		alpha3:   alpha3,
		numeric:  numeric,
		cont:     continent,
		codeType: ct,
	}, nil
}

// All returns a copy of all countries in registration order.
func (r *Registry) All() []Country {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Country, len(r.entries))
	copy(result, r.entries)
	return result
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Filter returns the countries matching keep, in registration order.
func (r *Registry) Filter(keep func(Country) bool) []Country {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Country
	for _, c := range r.entries {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}

// ByContinent returns the countries on continent.
func (r *Registry) ByContinent(continent Continent) []Country {
	return r.Filter(func(c Country) bool { return c.cont == continent })
}

// ByCodeType returns the countries with the given assignment status.
func (r *Registry) ByCodeType(ct CodeType) []Country {
	return r.Filter(func(c Country) bool { return c.codeType == ct })
}

func (r *Registry) lookup(index map[string]int, key string) (Country, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := index[key]
	if !ok {
		return Country{}, false
	}
	return r.entries[i], true
}

// LookupName finds a country by exact name.
func (r *Registry) LookupName(name string) (Country, bool) {
	return r.lookup(r.byName, name)
}

// LookupAlpha2 finds a country by two-letter code, ignoring case.
func (r *Registry) LookupAlpha2(code string) (Country, bool) {
	key, ok := upperASCII(code)
	if !ok {
		return Country{}, false
	}
	return r.lookup(r.byAlpha2, key)
}

// LookupAlpha3 finds a country by three-letter code, ignoring case.
func (r *Registry) LookupAlpha3(code string) (Country, bool) {
	key, ok := upperASCII(code)
	if !ok {
		return Country{}, false
	}
	return r.lookup(r.byAlpha3, key)
}

// upperASCII maps a-z to A-Z. It reports false for input that is not ASCII.
func upperASCII(s string) (string, bool) {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= 0x80:
			return "", false
		case 'a' <= c && c <= 'z':
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b), true
}

// LookupNumeric finds a country by its three-digit numeric code ("004").
// The match is exact; "4" does not find Afghanistan.
func (r *Registry) LookupNumeric(code string) (Country, bool) {
	return r.lookup(r.byNumeric, code)
}

// LookupNumericInt finds a country by numeric code given as an integer.
func (r *Registry) LookupNumericInt(code int) (Country, bool) {
	if code < 0 || code > 999 {
		return Country{}, false
	}
	return r.LookupNumeric(fmt.Sprintf("%03d", code))
}

// GetByNumeric is LookupNumericInt failing with CodeNotFound on a miss.
func (r *Registry) GetByNumeric(code int) (Country, error) {
	c, ok := r.LookupNumericInt(code)
	if !ok {
		return Country{}, newError(CodeNotFound, "numeric code", strconv.Itoa(code), nil)
	}
	return c, nil
}

// GetByNumericString is LookupNumeric failing with CodeInvalidFormat for a
// malformed code and CodeNotFound on a miss.
func (r *Registry) GetByNumericString(code string) (Country, error) {
	if !numericPattern.MatchString(code) {
		return Country{}, newError(CodeInvalidFormat, "numeric code", code, nil)
	}
	c, ok := r.LookupNumeric(code)
	if !ok {
		return Country{}, newError(CodeNotFound, "numeric code", code, nil)
	}
	return c, nil
}

// LookupCode finds a country by two- or three-letter code depending on the
// length of code. Any other length fails with CodeInvalidFormat.
func (r *Registry) LookupCode(code string) (Country, bool, error) {
	switch len(code) {
	case 2:
		c, ok := r.LookupAlpha2(code)
		return c, ok, nil
	case 3:
		c, ok := r.LookupAlpha3(code)
		return c, ok, nil
	default:
		return Country{}, false, newError(CodeInvalidFormat, "code", code,
			fmt.Errorf("length %d, want 2 or 3", len(code)))
	}
}
