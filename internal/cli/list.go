package cli

import (
	"fmt"

	"github.com/hightemp/iso3166/internal/countries"
	"github.com/hightemp/iso3166/internal/output"
	"github.com/spf13/cobra"
)

var (
	listContinent string
	listCodeType  string
	listSort      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered countries",
	Long: `Prints every registered country, optionally filtered.

Examples:
  iso3166 list                          # Table order
  iso3166 list --continent EU           # European countries
  iso3166 list --type user-assigned     # Codes such as XK
  iso3166 list --sort name -o json      # Sorted by name as JSON`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listContinent, "continent", "", "continent code or name (AF, AN, AS, EU, NA, OC, SA)")
	listCmd.Flags().StringVar(&listCodeType, "type", "", "code type, e.g. officially-assigned")
	listCmd.Flags().StringVar(&listSort, "sort", "none", "sort order: alpha2, numeric, name, or none")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	var filters []func(countries.Country) bool
	if listContinent != "" {
		cont, err := countries.ParseContinent(listContinent)
		if err != nil {
			return withExitCode(ExitInvalidInput, err)
		}
		filters = append(filters, func(c countries.Country) bool { return c.Continent() == cont })
	}
	if listCodeType != "" {
		ct, err := countries.ParseCodeType(listCodeType)
		if err != nil {
			return withExitCode(ExitInvalidInput, err)
		}
		filters = append(filters, func(c countries.Country) bool { return c.CodeType() == ct })
	}

	list := a.registry.Filter(func(c countries.Country) bool {
		for _, keep := range filters {
			if !keep(c) {
				return false
			}
		}
		return true
	})

	switch listSort {
	case "none", "":
	case "alpha2":
		countries.SortByAlpha2(list)
	case "numeric":
		countries.SortByNumeric(list)
	case "name":
		countries.SortByName(list)
	default:
		return withExitCode(ExitInvalidInput, fmt.Errorf("invalid sort order: %s (use alpha2, numeric, name, or none)", listSort))
	}

	out, err := output.NewBatchResult(list).Render(a.cfg.Output)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
