package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/heroes/internal/battle"
	"github.com/inovacc/heroes/internal/cli"
	"github.com/inovacc/heroes/internal/core"
	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/render"
	"github.com/inovacc/heroes/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded battles",
	Long: `Commands for browsing recorded battles.

Available Commands:
  list      List recorded battles
  show      Show the outcome and log of one battle
  replay    Step through a battle on the field`,
	Aliases: []string{"battles"},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var historyListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List recorded battles",
	Aliases: []string{"ls"},
	RunE:    runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the outcome and log of one battle",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyReplayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Step through a battle on the field",
	Long: `Replay a recorded battle. In a terminal an interactive viewer shows the
field after each attack; otherwise the state after --step attacks is printed.

The field can only be drawn while both presets of the battle are stored.

Examples:
  heroes history replay 3c2d...
  heroes history replay 3c2d... --step 25`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryReplay,
}

var (
	historyListJSON bool
	historyShowJSON bool
	historyShowLog  bool
	historyStep     int
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyReplayCmd)

	historyListCmd.Flags().BoolVar(&historyListJSON, "json", false, "Output as JSON")
	historyShowCmd.Flags().BoolVar(&historyShowJSON, "json", false, "Output as JSON")
	historyShowCmd.Flags().BoolVar(&historyShowLog, "log", true, "Print every attack")
	historyReplayCmd.Flags().IntVar(&historyStep, "step", -1, "Number of attacks to apply, -1 for all (non-interactive)")
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	battles, err := db.ListBattles()
	if err != nil {
		return fmt.Errorf("failed to list battles: %w", err)
	}

	out := cmd.OutOrStdout()

	if historyListJSON {
		return printJSON(out, battles)
	}

	if len(battles) == 0 {
		_, _ = fmt.Fprintln(out, "No battles recorded.")
		_, _ = fmt.Fprintln(out, "\nFight one with: heroes simulate <player> [computer]")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ID\tWINNER\tOUTCOME\tROUNDS\tATTACKS\tFOUGHT")
	_, _ = fmt.Fprintln(w, "--\t------\t-------\t------\t-------\t------")

	for _, b := range battles {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			b.ID,
			b.Winner,
			b.Outcome,
			b.Rounds,
			b.Attacks,
			b.FoughtAt.Format("2006-01-02 15:04"),
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	rec, err := db.GetBattle(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if historyShowJSON {
		return printJSON(out, rec)
	}

	printBattle(out, newRenderer(out), rec, historyShowLog)

	return nil
}

func runHistoryReplay(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	rec, err := db.GetBattle(args[0])
	if err != nil {
		return err
	}

	player, computer, err := battleArmies(db, rec)
	if err != nil {
		return err
	}

	if render.IsTerminal(os.Stdin) && render.IsTerminal(os.Stdout) && historyStep < 0 {
		_, err := tea.NewProgram(cli.NewReplay(rec, player, computer, newRenderer(os.Stdout)), tea.WithAltScreen()).Run()
		return err
	}

	out := cmd.OutOrStdout()
	r := newRenderer(out)

	step := historyStep
	if step < 0 || step > len(rec.Log) {
		step = len(rec.Log)
	}

	for _, e := range rec.Log[:step] {
		_, _ = fmt.Fprintln(out, r.LogLine(e))
	}

	if player == nil {
		_, _ = fmt.Fprintln(out, "\nThe presets of this battle are gone, the field cannot be drawn.")
		return nil
	}

	battle.Replay(player, computer, rec.Log[:step])

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, r.Board(player, computer, render.BoardOptions{}))

	return nil
}

// battleArmies loads both presets of a battle lined up as they fought.
// Both armies are nil when either preset is unknown.
func battleArmies(db store.Store, rec *model.BattleRecord) (*model.Army, *model.Army, error) {
	if rec.PlayerPresetID == "" || rec.ComputerPresetID == "" {
		return nil, nil, nil
	}

	p, err := db.GetPreset(rec.PlayerPresetID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, err
	}

	c, err := db.GetPreset(rec.ComputerPresetID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, err
	}

	player, computer := core.PrepareArmies(p.Army, c.Army)

	return player, computer, nil
}
