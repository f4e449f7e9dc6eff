package countries

import (
	"fmt"
	"strings"
)

// Format selects a Country field for formatting and restricts parsing.
type Format int

const (
	// FormatAuto formats as the three-letter code and parses any field.
	FormatAuto Format = iota
	FormatName
	FormatAlpha2
	FormatAlpha3
	FormatNumeric
)

var formatNames = [...]string{
	FormatAuto:    "auto",
	FormatName:    "name",
	FormatAlpha2:  "alpha2",
	FormatAlpha3:  "alpha3",
	FormatNumeric: "numeric",
}

func (f Format) String() string {
	if f < FormatAuto || f > FormatNumeric {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat parses a format name as used on the command line.
// "two-letter" and "three-letter" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "name":
		return FormatName, nil
	case "alpha2", "alpha-2", "two-letter":
		return FormatAlpha2, nil
	case "alpha3", "alpha-3", "three-letter":
		return FormatAlpha3, nil
	case "numeric":
		return FormatNumeric, nil
	default:
		return FormatAuto, newError(CodeInvalidArgument, "format", s, nil)
	}
}

// Parse resolves s to a country. With no format, or FormatAuto, the name is
// tried first, then the two-letter, three-letter and numeric codes. With a
// format only that field is matched. A miss yields a CodeFormatError error.
func (r *Registry) Parse(s string, format ...Format) (Country, error) {
	c, ok := r.TryParse(s, format...)
	if !ok {
		return Country{}, newError(CodeFormatError, "", s, nil)
	}
	return c, nil
}

// TryParse is Parse without the error.
func (r *Registry) TryParse(s string, format ...Format) (Country, bool) {
	f := FormatAuto
	if len(format) > 0 {
		f = format[0]
	}

	switch f {
	case FormatName:
		return r.LookupName(s)
	case FormatAlpha2:
		return r.LookupAlpha2(s)
	case FormatAlpha3:
		return r.LookupAlpha3(s)
	case FormatNumeric:
		return r.LookupNumeric(s)
	case FormatAuto:
		if c, ok := r.LookupName(s); ok {
			return c, true
		}
		if c, ok := r.LookupAlpha2(s); ok {
			return c, true
		}
		if c, ok := r.LookupAlpha3(s); ok {
			return c, true
		}
		return r.LookupNumeric(s)
	default:
		return Country{}, false
	}
}
