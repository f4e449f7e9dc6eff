package cli

import (
	"fmt"

	"github.com/hightemp/iso3166/internal/batch"
	"github.com/hightemp/iso3166/internal/output"
	"github.com/spf13/cobra"
)

func runLookup(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	// Check if we have a query argument or should read from stdin
	if len(args) == 1 {
		return lookupSingle(cmd, a, args[0])
	}

	if !stdinIsBatch(cmd) {
		// stdin is a terminal, show help
		return cmd.Help()
	}

	// Batch mode from stdin
	processor := batch.NewProcessor(a.registry, a.format, a.cfg.Concurrency, a.logger)
	if a.cfg.Concurrency > 1 {
		return processor.ProcessInputConcurrent(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Output)
	}
	return processor.ProcessInput(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Output)
}

func lookupSingle(cmd *cobra.Command, a *app, query string) error {
	c, err := a.registry.Parse(query, a.format)
	if err != nil {
		return err
	}

	out, err := output.NewLookupResult("", c).Render(a.cfg.Output)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
