// Package batch handles batch country lookups from stdin.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hightemp/iso3166/internal/config"
	"github.com/hightemp/iso3166/internal/countries"
	"github.com/hightemp/iso3166/internal/output"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Resolved is the outcome of one query.
type Resolved struct {
	Query   string
	Country countries.Country
	Err     error
}

// Result converts r for output.
func (r Resolved) Result() *output.LookupResult {
	if r.Err != nil {
		return output.NewErrorResult(r.Query, r.Err)
	}
	return output.NewLookupResult(r.Query, r.Country)
}

// Processor handles batch country lookups.
type Processor struct {
	registry    *countries.Registry
	format      countries.Format
	concurrency int
	logger      *zap.Logger
}

// NewProcessor creates a new batch processor. Queries are parsed with
// format; FormatAuto tries every field.
func NewProcessor(registry *countries.Registry, format countries.Format, concurrency int, logger *zap.Logger) *Processor {
	if concurrency < 1 {
		concurrency = config.DefaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		registry:    registry,
		format:      format,
		concurrency: concurrency,
		logger:      logger,
	}
}

// ReadQueries reads one query per line, skipping blank lines.
func ReadQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			queries = append(queries, line)
		}
	}
	return queries, scanner.Err()
}

// ProcessInput reads queries from input and writes results to output.
// Text output is streamed line by line; JSON and YAML are written as one
// array once the input is exhausted.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, w io.Writer, format string) error {
	scanner := bufio.NewScanner(r)

	if format == config.OutputText {
		// Stream output line by line
		for scanner.Scan() {
			if err := ctx.Err(); err != nil {
				return err
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if _, err := fmt.Fprintln(w, p.resolve(line).Result().FormatText()); err != nil {
				return err
			}
		}
		return scanner.Err()
	}

	// Collect all results for array output
	var results []*output.LookupResult
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		results = append(results, p.resolve(line).Result())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return writeBatch(w, &output.BatchResult{Results: results}, format)
}

// ProcessInputConcurrent processes queries concurrently. Output order
// matches input order.
func (p *Processor) ProcessInputConcurrent(ctx context.Context, r io.Reader, w io.Writer, format string) error {
	queries, err := ReadQueries(r)
	if err != nil {
		return err
	}

	resolved := p.Resolve(ctx, queries)
	if err := ctx.Err(); err != nil {
		return err
	}

	results := make([]*output.LookupResult, len(resolved))
	for i, res := range resolved {
		results[i] = res.Result()
	}
	return writeBatch(w, &output.BatchResult{Results: results}, format)
}

// Resolve parses all queries with at most p.concurrency lookups in flight.
// Queries not started before ctx is done carry ctx.Err().
func (p *Processor) Resolve(ctx context.Context, queries []string) []Resolved {
	results := make([]Resolved, len(queries))

	// Each goroutine writes only its own slot
	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i, query := range queries {
		if err := ctx.Err(); err != nil {
			results[i] = Resolved{Query: query, Err: err}
			continue
		}
		i, query := i, query
		g.Go(func() error {
			results[i] = p.resolve(query)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func (p *Processor) resolve(query string) Resolved {
	c, err := p.registry.Parse(query, p.format)
	if err != nil {
		p.logger.Debug("query did not resolve",
			zap.String("query", query),
			zap.Stringer("format", p.format),
			zap.Error(err),
		)
		return Resolved{Query: query, Err: err}
	}
	return Resolved{Query: query, Country: c}
}

func writeBatch(w io.Writer, batch *output.BatchResult, format string) error {
	out, err := batch.Render(format)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
