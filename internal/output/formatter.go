// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hightemp/iso3166/internal/config"
	"github.com/hightemp/iso3166/internal/countries"
	"gopkg.in/yaml.v3"
)

// LookupResult contains the result of resolving one query.
type LookupResult struct {
	Query         string `json:"query,omitempty" yaml:"query,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Alpha2        string `json:"alpha2,omitempty" yaml:"alpha2,omitempty"`
	Alpha3        string `json:"alpha3,omitempty" yaml:"alpha3,omitempty"`
	Numeric       string `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Continent     string `json:"continent,omitempty" yaml:"continent,omitempty"`
	ContinentCode string `json:"continent_code,omitempty" yaml:"continent_code,omitempty"`
	CodeType      string `json:"code_type,omitempty" yaml:"code_type,omitempty"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewLookupResult describes c. query may be empty.
func NewLookupResult(query string, c countries.Country) *LookupResult {
	return &LookupResult{
		Query:         query,
		Name:          c.Name(),
		Alpha2:        c.Alpha2(),
		Alpha3:        c.Alpha3(),
		Numeric:       c.Numeric(),
		Continent:     c.Continent().String(),
		ContinentCode: c.Continent().Code(),
		CodeType:      c.CodeType().String(),
	}
}

// NewErrorResult records a failed query.
func NewErrorResult(query string, err error) *LookupResult {
	return &LookupResult{Query: query, Error: err.Error()}
}

// FormatText formats result as tab-separated text. The query column is only
// present when the result has a query.
func (r *LookupResult) FormatText() string {
	if r.Error != "" {
		return FormatError(r.Query, r.Error)
	}

	fields := []string{r.Alpha2, r.Alpha3, r.Numeric, r.Name, r.ContinentCode, r.CodeType}
	if r.Query != "" {
		fields = append([]string{r.Query}, fields...)
	}
	return strings.Join(fields, "\t")
}

// FormatJSON formats result as JSON.
func (r *LookupResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatYAML formats result as a YAML document.
func (r *LookupResult) FormatYAML() (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Render formats result in the named output format.
func (r *LookupResult) Render(format string) (string, error) {
	switch format {
	case config.OutputJSON:
		return r.FormatJSON()
	case config.OutputYAML:
		return r.FormatYAML()
	default:
		return r.FormatText(), nil
	}
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*LookupResult
}

// NewBatchResult wraps countries, for example a listing, without queries.
func NewBatchResult(list []countries.Country) *BatchResult {
	results := make([]*LookupResult, len(list))
	for i, c := range list {
		results[i] = NewLookupResult("", c)
	}
	return &BatchResult{Results: results}
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	results := b.Results
	if results == nil {
		results = []*LookupResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatYAML formats batch results as a YAML sequence.
func (b *BatchResult) FormatYAML() (string, error) {
	results := b.Results
	if results == nil {
		results = []*LookupResult{}
	}
	data, err := yaml.Marshal(results)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Render formats batch results in the named output format.
func (b *BatchResult) Render(format string) (string, error) {
	switch format {
	case config.OutputJSON:
		return b.FormatJSON()
	case config.OutputYAML:
		return b.FormatYAML()
	default:
		return b.FormatText(), nil
	}
}

// FormatError formats an error line for text output.
func FormatError(query string, msg string) string {
	return fmt.Sprintf("%s\t-\t-\t-\tERROR: %s", query, msg)
}
