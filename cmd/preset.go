package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/inovacc/heroes/internal/encoding"
	"github.com/inovacc/heroes/internal/render"
	"github.com/spf13/cobra"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage stored army presets",
	Long: `Commands for managing stored army presets.

Available Commands:
  list      List stored presets
  show      Show one preset
  delete    Delete a preset
  export    Write a preset army to a JSON or YAML file`,
	Aliases: []string{"presets"},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var presetListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored presets",
	Aliases: []string{"ls"},
	RunE:    runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a preset",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runPresetDelete,
}

var presetExportCmd = &cobra.Command{
	Use:   "export <id> <file>",
	Short: "Write a preset army to a JSON or YAML file",
	Long: `Write the army of a preset to a file. The format follows the extension:
.yaml and .yml give YAML, anything else JSON.

Examples:
  heroes preset export 5f0c... army.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runPresetExport,
}

var (
	presetListJSON bool
	presetShowJSON bool
	presetBoard    bool
	presetYes      bool
)

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetListCmd, presetShowCmd, presetDeleteCmd, presetExportCmd)

	presetListCmd.Flags().BoolVar(&presetListJSON, "json", false, "Output as JSON")
	presetShowCmd.Flags().BoolVar(&presetShowJSON, "json", false, "Output as JSON")
	presetShowCmd.Flags().BoolVar(&presetBoard, "board", false, "Draw the army on the field")
	presetDeleteCmd.Flags().BoolVarP(&presetYes, "yes", "y", false, "Skip confirmation prompt")
}

func runPresetList(cmd *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	presets, err := db.ListPresets()
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}

	out := cmd.OutOrStdout()

	if presetListJSON {
		return printJSON(out, presets)
	}

	if len(presets) == 0 {
		_, _ = fmt.Fprintln(out, "No presets stored.")
		_, _ = fmt.Fprintln(out, "\nCreate one with: heroes generate")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ID\tNAME\tUNITS\tPOINTS\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t----\t-----\t------\t-------")

	for _, p := range presets {
		units, points := 0, 0
		if p.Army != nil {
			units, points = len(p.Army.Units), p.Army.Points
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d/%d\t%s\n",
			p.ID,
			truncateString(p.Name, 24),
			units,
			points,
			p.MaxPoints,
			p.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	p, err := db.GetPreset(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if presetShowJSON {
		return printJSON(out, p)
	}

	r := newRenderer(out)

	if err := printPreset(out, r, p); err != nil {
		return err
	}

	if presetBoard {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, r.Board(nil, p.Army, render.BoardOptions{}))
	}

	return nil
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	if _, err := db.GetPreset(args[0]); err != nil {
		return err
	}

	if !presetYes && !promptConfirm(fmt.Sprintf("Delete preset %s? [y/N]: ", args[0])) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	if err := db.DeletePreset(args[0]); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}

	logger.Info("preset deleted", "id", args[0])

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Preset %s deleted.\n", args[0])

	return nil
}

func runPresetExport(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	p, err := db.GetPreset(args[0])
	if err != nil {
		return err
	}

	path, err := expandPath(args[1])
	if err != nil {
		return err
	}

	if err := encoding.SaveFile(path, p.Army); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Army of preset %s written to %s (%s)\n", p.ID, path, encoding.FormatFor(path))

	return nil
}
