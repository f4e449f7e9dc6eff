package countries

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Convert coerces v into a Country using the default registry. Strings go
// through Parse and integers through GetByNumeric.
func Convert(v any) (Country, error) {
	switch v := v.(type) {
	case Country:
		return v, nil
	case *Country:
		if v == nil {
			return Country{}, newError(CodeInvalidArgument, "value", "<nil>", nil)
		}
		return *v, nil
	case string:
		return Parse(v)
	case []byte:
		return Parse(string(v))
	case int:
		return GetByNumeric(v)
	case int8:
		return GetByNumeric(int(v))
	case int16:
		return GetByNumeric(int(v))
	case int32:
		return GetByNumeric(int(v))
	case int64:
		return convertInt64(v)
	case uint8:
		return GetByNumeric(int(v))
	case uint16:
		return GetByNumeric(int(v))
	case uint32:
		return convertInt64(int64(v))
	case uint:
		if uint64(v) > math.MaxInt64 {
			return Country{}, newError(CodeNotFound, "numeric code", strconv.FormatUint(uint64(v), 10), nil)
		}
		return convertInt64(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return Country{}, newError(CodeNotFound, "numeric code", strconv.FormatUint(v, 10), nil)
		}
		return convertInt64(int64(v))
	default:
		return Country{}, newError(CodeInvalidArgument, "value type", fmt.Sprintf("%T", v), nil)
	}
}

func convertInt64(n int64) (Country, error) {
	if n < 0 || n > 999 {
		return Country{}, newError(CodeNotFound, "numeric code", strconv.FormatInt(n, 10), nil)
	}
	return GetByNumeric(int(n))
}

// Region returns the x/text region for the two-letter code.
func (c Country) Region() (language.Region, error) {
	if c.IsZero() {
		return language.Region{}, newError(CodeInvalidArgument, "country", "", nil)
	}
	r, err := language.ParseRegion(c.alpha2)
	if err != nil {
		return language.Region{}, fmt.Errorf("region %s: %w", c.alpha2, err)
	}
	return r, nil
}

// MarshalText encodes c as its three-letter code.
func (c Country) MarshalText() ([]byte, error) {
	return []byte(c.alpha3), nil
}

// UnmarshalText parses text with the default registry.
func (c *Country) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalJSON encodes c as a JSON string holding the three-letter code, or
// null for the zero Country.
func (c Country) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(c.alpha3)
}

// UnmarshalJSON accepts a string (any parseable field) or a number
// (numeric code).
func (c *Country) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = Country{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return newError(CodeInvalidArgument, "json value", string(data), err)
	}
	v, err := GetByNumeric(n)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML encodes c as its three-letter code.
func (c Country) MarshalYAML() (interface{}, error) {
	if c.IsZero() {
		return nil, nil
	}
	return c.alpha3, nil
}

// UnmarshalYAML accepts a scalar. Integers are numeric codes; a
// three-digit scalar is matched as written so that "004" keeps its zeros.
func (c *Country) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return newError(CodeInvalidArgument, "yaml node", value.ShortTag(), nil)
	}

	switch {
	case value.ShortTag() == "!!null":
		*c = Country{}
		return nil
	case numericPattern.MatchString(value.Value):
		v, err := Default().GetByNumericString(value.Value)
		if err != nil {
			return err
		}
		*c = v
		return nil
	case value.ShortTag() == "!!int":
		n, err := strconv.Atoi(value.Value)
		if err != nil {
			return newError(CodeInvalidArgument, "yaml value", value.Value, err)
		}
		v, err := GetByNumeric(n)
		if err != nil {
			return err
		}
		*c = v
		return nil
	default:
		return c.UnmarshalText([]byte(value.Value))
	}
}
