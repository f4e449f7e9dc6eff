package output

import (
	"encoding/json"
	"strings"

	"github.com/hightemp/iso3166/internal/config"
	"gopkg.in/yaml.v3"
)

// Conversion is one query mapped to a single field.
type Conversion struct {
	Query string `json:"query" yaml:"query"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Conversions is an ordered list of conversions.
type Conversions []Conversion

// FormatText prints the bare value per line, or an error line.
func (cs Conversions) FormatText() string {
	lines := make([]string, 0, len(cs))
	for _, c := range cs {
		if c.Error != "" {
			lines = append(lines, c.Query+"\tERROR: "+c.Error)
			continue
		}
		lines = append(lines, c.Value)
	}
	return strings.Join(lines, "\n")
}

// Render formats conversions in the named output format.
func (cs Conversions) Render(format string) (string, error) {
	list := []Conversion(cs)
	if list == nil {
		list = []Conversion{}
	}

	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case config.OutputYAML:
		data, err := yaml.Marshal(list)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return cs.FormatText(), nil
	}
}
