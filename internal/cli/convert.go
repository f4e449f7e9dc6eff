package cli

import (
	"fmt"

	"github.com/hightemp/iso3166/internal/batch"
	"github.com/hightemp/iso3166/internal/countries"
	"github.com/hightemp/iso3166/internal/output"
	"github.com/spf13/cobra"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert [query...]",
	Short: "Convert queries to a single field",
	Long: `Resolves each query and prints only the requested field. Queries are
read from stdin, one per line, when none are given.

Examples:
  iso3166 convert --to alpha3 SK DE      # SVK, DEU
  iso3166 convert --to name 703
  cat codes.txt | iso3166 convert --to numeric`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "alpha3", "target field: alpha2, alpha3, numeric, or name")
}

func runConvert(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	to, err := countries.ParseFormat(convertTo)
	if err != nil || to == countries.FormatAuto {
		return withExitCode(ExitInvalidInput, fmt.Errorf("invalid target field: %s (use alpha2, alpha3, numeric, or name)", convertTo))
	}

	queries := args
	if len(queries) == 0 {
		if !stdinIsBatch(cmd) {
			return cmd.Help()
		}
		queries, err = batch.ReadQueries(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read queries: %w", err)
		}
	}

	processor := batch.NewProcessor(a.registry, a.format, a.cfg.Concurrency, a.logger)
	resolved := processor.Resolve(cmd.Context(), queries)
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	failed := 0
	convs := make(output.Conversions, len(resolved))
	for i, r := range resolved {
		convs[i] = output.Conversion{Query: r.Query}
		if r.Err != nil {
			convs[i].Error = r.Err.Error()
			failed++
			continue
		}
		convs[i].Value = r.Country.FormatAs(to)
	}

	out, err := convs.Render(a.cfg.Output)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	// Batch input reports failures inline; arguments also set the exit code
	if failed > 0 && len(args) > 0 {
		return withExitCode(ExitNotFound, fmt.Errorf("%d of %d queries did not resolve", failed, len(args)))
	}
	return nil
}
