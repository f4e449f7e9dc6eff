package countries

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Load registers every row of a data file read from rd. Rows have the form
//
//	alpha2;alpha3;numeric;continent;code-type;name
//
// Blank lines and lines starting with '#' are skipped. The name is the last
// column and may contain ';'. Load is all or nothing: if any row fails,
// the rows it already added are removed again before it returns.
// The input is read and parsed before the registry is locked, so lookups
// are not held up by a slow reader. It returns the number of rows read.
func (r *Registry) Load(rd io.Reader) (int, error) {
	type row struct {
		line    int
		country Country
	}

	var rows []row
	lineNo := 0
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := parseRow(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rows = append(rows, row{line: lineNo, country: c})
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read countries: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	mark := len(r.entries)
	for _, rw := range rows {
		if _, err := r.register(rw.country); err != nil {
			r.truncate(mark)
			return 0, fmt.Errorf("line %d: %w", rw.line, err)
		}
	}
	return len(rows), nil
}

func parseRow(line string) (Country, error) {
	parts := strings.SplitN(line, ";", 6)
	if len(parts) != 6 {
		return Country{}, newError(CodeInvalidFormat, "row", line,
			fmt.Errorf("%d columns, want 6", len(parts)))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	continent, err := ParseContinent(parts[3])
	if err != nil {
		return Country{}, err
	}
	ct, err := ParseCodeType(parts[4])
	if err != nil {
		return Country{}, err
	}
	return newCountry(parts[5], parts[0], parts[1], parts[2], continent, ct)
}

// truncate drops entries from position n on. Must be called with mu held.
func (r *Registry) truncate(n int) {
	for _, c := range r.entries[n:] {
		delete(r.byNumeric, c.numeric)
		delete(r.byAlpha3, c.alpha3)
		delete(r.byAlpha2, c.alpha2)
		delete(r.byName, c.name)
	}
	clear(r.entries[n:])
	r.entries = r.entries[:n]
}
