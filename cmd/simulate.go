package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/inovacc/heroes/internal/battle"
	"github.com/inovacc/heroes/internal/core"
	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/render"
	"github.com/inovacc/heroes/internal/store"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <player> [computer]",
	Short: "Simulate a battle between two armies",
	Long: `Simulate a battle. Each army is a stored preset ID or a JSON/YAML army file.

Without a computer army a fresh one is generated from the catalog and stored
as a preset. A player army standing on the computer side is mirrored to the
other side first.

Examples:
  heroes simulate 5f0c... 9a1b...
  heroes simulate my-army.yaml --points 1200 --log
  heroes simulate 5f0c... --max-rounds 50 --board`,
	Aliases: []string{"sim", "fight"},
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runSimulate,
}

var (
	simulatePoints    int
	simulateMaxRounds int
	simulateLog       bool
	simulateBoard     bool
	simulateNoSave    bool
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simulatePoints, "points", "p", 0, "Point budget of a generated computer army (default from config)")
	simulateCmd.Flags().IntVar(&simulateMaxRounds, "max-rounds", -1, "Round limit, 0 for none (default from config)")
	simulateCmd.Flags().BoolVar(&simulateLog, "log", false, "Print every attack")
	simulateCmd.Flags().BoolVar(&simulateBoard, "board", false, "Draw the field after the battle")
	simulateCmd.Flags().BoolVar(&simulateNoSave, "no-save", false, "Do not store the battle record")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	player, playerID, err := core.ResolveArmy(db, args[0])
	if err != nil {
		return fmt.Errorf("player army: %w", err)
	}

	computer, computerID, err := resolveComputer(db, args[1:])
	if err != nil {
		return fmt.Errorf("computer army: %w", err)
	}

	maxRounds := simulateMaxRounds
	if maxRounds < 0 {
		maxRounds = cfg.Battle.MaxRounds
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
	defer stop()

	rec, err := core.RunBattle(ctx, core.BattleOptions{
		Player:           player,
		Computer:         computer,
		PlayerPresetID:   playerID,
		ComputerPresetID: computerID,
		MaxRounds:        maxRounds,
		BattleLog:        &battle.SlogLogger{Logger: logger, Level: slog.LevelDebug},
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	if !simulateNoSave {
		if err := core.SaveBattle(db, rec); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	r := newRenderer(out)

	printBattle(out, r, rec, simulateLog)

	if simulateBoard {
		p, c := core.PrepareArmies(player, computer)
		battle.Replay(p, c, rec.Log)

		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, r.Board(p, c, render.BoardOptions{}))
	}

	return nil
}

func resolveComputer(db store.Store, args []string) (*model.Army, string, error) {
	if len(args) > 0 {
		return core.ResolveArmy(db, args[0])
	}

	units, err := loadCatalog("")
	if err != nil {
		return nil, "", err
	}

	points := simulatePoints
	if points == 0 {
		points = cfg.Preset.MaxPoints
	}

	// stored so the battle can be replayed later
	p, err := core.GeneratePreset(db, core.GenerateOptions{
		Catalog:   units,
		MaxPoints: points,
		Name:      "generated for battle",
		Save:      !simulateNoSave,
	})
	if err != nil {
		return nil, "", err
	}

	logger.Info("computer army generated", "id", p.ID, "units", len(p.Army.Units), "points", p.Army.Points)

	if simulateNoSave {
		return p.Army, "", nil
	}

	return p.Army, p.ID, nil
}

// printBattle writes the outcome of a battle and optionally its log.
func printBattle(w io.Writer, r *render.Renderer, rec *model.BattleRecord, withLog bool) {
	if withLog {
		for _, e := range rec.Log {
			_, _ = fmt.Fprintln(w, r.LogLine(e))
		}

		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, r.Title("Battle "+rec.ID))
	_, _ = fmt.Fprintln(w, r.Outcome(rec))

	if rec.PlayerPresetID != "" {
		_, _ = fmt.Fprintf(w, "Player preset:   %s\n", rec.PlayerPresetID)
	}

	if rec.ComputerPresetID != "" {
		_, _ = fmt.Fprintf(w, "Computer preset: %s\n", rec.ComputerPresetID)
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
