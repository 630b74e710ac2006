package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the unit templates armies are built from",
	Long: `List the unit templates of the configured catalog.

The built-in catalog is used unless catalog.path is set in the config file
or --file is given.

Examples:
  heroes catalog
  heroes catalog --file units.yaml --json`,
	RunE: runCatalog,
}

var (
	catalogFile string
	catalogJSON bool
)

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogFile, "file", "", "Catalog YAML file")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Output as JSON")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	units, err := loadCatalog(catalogFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if catalogJSON {
		return printJSON(out, units)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "TYPE\tHEALTH\tATTACK\tCOST\tKIND\tATTACK BONUS\tDEFENCE BONUS")
	_, _ = fmt.Fprintln(w, "----\t------\t------\t----\t----\t------------\t-------------")

	for _, u := range units {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
			u.UnitType,
			u.Health,
			u.BaseAttack,
			u.Cost,
			u.AttackType,
			formatBonuses(u.AttackBonuses),
			formatBonuses(u.DefenceBonuses),
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
