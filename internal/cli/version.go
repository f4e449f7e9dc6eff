package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync() //nolint:errcheck

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "iso3166 %s\n", Version)
		fmt.Fprintf(out, "  Commit: %s\n", Commit)
		fmt.Fprintf(out, "  Built: %s\n", BuildTime)
		fmt.Fprintf(out, "  Countries: %d\n", a.registry.Len())
		return nil
	},
}
