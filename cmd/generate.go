package cmd

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/inovacc/heroes/internal/core"
	"github.com/inovacc/heroes/internal/encoding"
	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/render"
	"github.com/inovacc/heroes/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a computer army preset",
	Long: `Generate a computer army within a point budget.

Units are picked greedily by attack per point, then health per point, with at
most 11 units of each type. The preset is stored unless --no-save is given.

Examples:
  heroes generate
  heroes generate --points 800 --name skirmish
  heroes generate --points 300 --no-save --output army.yaml --board`,
	Aliases: []string{"gen"},
	RunE:    runGenerate,
}

var (
	generatePoints  int
	generateName    string
	generateNoSave  bool
	generateOutput  string
	generateBoard   bool
	generateCatalog string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&generatePoints, "points", "p", 0, "Point budget (default from config)")
	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "Display name for the preset")
	generateCmd.Flags().BoolVar(&generateNoSave, "no-save", false, "Do not store the preset")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Also write the army to a JSON or YAML file")
	generateCmd.Flags().BoolVar(&generateBoard, "board", false, "Draw the army on the field")
	generateCmd.Flags().StringVar(&generateCatalog, "catalog", "", "Unit catalog file (default from config)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	units, err := loadCatalog(generateCatalog)
	if err != nil {
		return err
	}

	points := generatePoints
	if points == 0 {
		points = cfg.Preset.MaxPoints
	}

	var db store.Store

	if !generateNoSave {
		db, err = openStore()
		if err != nil {
			return err
		}

		defer func() { _ = db.Close() }()
	}

	p, err := core.GeneratePreset(db, core.GenerateOptions{
		Catalog:   units,
		MaxPoints: points,
		Name:      generateName,
		Save:      !generateNoSave,
	})
	if err != nil {
		return err
	}

	logger.Info("preset generated", "id", p.ID, "units", len(p.Army.Units), "points", p.Army.Points)

	out := cmd.OutOrStdout()
	r := newRenderer(out)

	if err := printPreset(out, r, p); err != nil {
		return err
	}

	if generateNoSave {
		_, _ = fmt.Fprintln(out, "\nPreset not saved (--no-save).")
	}

	if generateOutput != "" {
		path, err := expandPath(generateOutput)
		if err != nil {
			return err
		}

		if err := encoding.SaveFile(path, p.Army); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "Army written to %s\n", path)
	}

	if generateBoard {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, r.Board(nil, p.Army, render.BoardOptions{}))
	}

	return nil
}

// printPreset writes a preset summary with its unit counts.
func printPreset(w io.Writer, r *render.Renderer, p *model.Preset) error {
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}

	_, _ = fmt.Fprintln(w, r.Title("Preset "+name))
	_, _ = fmt.Fprintf(w, "ID:       %s\n", p.ID)
	_, _ = fmt.Fprintf(w, "Points:   %d/%d\n", p.Army.Points, p.MaxPoints)
	_, _ = fmt.Fprintf(w, "Units:    %d\n", len(p.Army.Units))
	_, _ = fmt.Fprintf(w, "Created:  %s\n\n", p.CreatedAt.Format("2006-01-02 15:04:05"))

	counts := p.Army.CountByType()

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}

	slices.Sort(types)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "TYPE\tCOUNT")
	_, _ = fmt.Fprintln(tw, "----\t-----")

	for _, t := range types {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", t, counts[t])
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
