package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/inovacc/heroes/internal/core"
	"github.com/inovacc/heroes/internal/render"
	"github.com/inovacc/heroes/internal/targeting"
	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets <army>",
	Short: "Show which units of an army can be attacked",
	Long: `List the units of an army that are exposed to enemy attacks.

Within each column only the unit nearest to the enemy side is exposed.
The army is a stored preset ID or a JSON/YAML army file.

Examples:
  heroes targets 5f0c...
  heroes targets army.yaml --board`,
	Args: cobra.ExactArgs(1),
	RunE: runTargets,
}

var targetsBoard bool

func init() {
	rootCmd.AddCommand(targetsCmd)

	targetsCmd.Flags().BoolVar(&targetsBoard, "board", false, "Draw the army with exposed units highlighted")
}

func runTargets(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	army, _, err := core.ResolveArmy(db, args[0])
	if err != nil {
		return err
	}

	exposed := core.ExposedUnits(army)

	out := cmd.OutOrStdout()

	if len(exposed) == 0 {
		_, _ = fmt.Fprintln(out, "No living units.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "NAME\tTYPE\tX\tY\tHEALTH")
	_, _ = fmt.Fprintln(w, "----\t----\t-\t-\t------")

	for _, u := range exposed {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", u.Name, u.UnitType, u.X, u.Y, u.Health)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if targetsBoard {
		r := newRenderer(out)
		opts := render.BoardOptions{Marked: exposed}

		_, _ = fmt.Fprintln(out)

		if targeting.IsLeftArmy(army) {
			_, _ = fmt.Fprintln(out, r.Board(nil, army, opts))
		} else {
			_, _ = fmt.Fprintln(out, r.Board(army, nil, opts))
		}
	}

	return nil
}
