package battle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/inovacc/heroes/internal/model"
)

var (
	// ErrStalemate is returned when a whole round passes without a single hit.
	ErrStalemate = errors.New("stalemate: no unit could attack")

	// ErrRoundLimit is returned when the configured round limit is reached.
	ErrRoundLimit = errors.New("round limit reached")
)

// Options configures a Simulator.
type Options struct {
	// BattleLog receives every attack; may be nil
	BattleLog BattleLogger

	// MaxRounds bounds the simulation, 0 means unlimited
	MaxRounds int

	Logger *slog.Logger
}

// Result summarizes a finished simulation.
type Result struct {
	Winner  model.Side
	Rounds  int
	Attacks int
}

// Simulator plays two armies against each other until one of them has no
// living units left.
type Simulator struct {
	battleLog BattleLogger
	maxRounds int
	logger    *slog.Logger
}

// NewSimulator creates a simulator from opts.
func NewSimulator(opts Options) *Simulator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Simulator{
		battleLog: opts.BattleLog,
		maxRounds: opts.MaxRounds,
		logger:    logger,
	}
}

// SetBattleLogger replaces the attack log sink.
func (s *Simulator) SetBattleLogger(l BattleLogger) {
	s.battleLog = l
}

// Simulate runs rounds until one army is wiped out. At the start of every
// round the living units of both armies are queued by descending base
// attack (player units first on ties) and each takes one turn through its
// Program. Units killed earlier in the round lose their turn.
//
// The context is checked before every turn.
func (s *Simulator) Simulate(ctx context.Context, player, computer *model.Army) (*Result, error) {
	res := &Result{Winner: model.SideNone}

	for player.HasAliveUnits() && computer.HasAliveUnits() {
		if s.maxRounds > 0 && res.Rounds >= s.maxRounds {
			return res, ErrRoundLimit
		}

		res.Rounds++

		if rl, ok := s.battleLog.(RoundLogger); ok {
			rl.StartRound(res.Rounds)
		}

		landed, err := s.playRound(ctx, player, computer, res)
		if err != nil {
			return res, err
		}

		s.logger.Debug("round finished", "round", res.Rounds, "hits", landed,
			"player_alive", len(player.AliveUnits()), "computer_alive", len(computer.AliveUnits()))

		if landed == 0 && player.HasAliveUnits() && computer.HasAliveUnits() {
			return res, ErrStalemate
		}
	}

	res.Winner = winner(player, computer)

	return res, nil
}

func (s *Simulator) playRound(ctx context.Context, player, computer *model.Army, res *Result) (int, error) {
	landed := 0

	for _, unit := range turnQueue(player, computer) {
		if err := ctx.Err(); err != nil {
			return landed, err
		}

		if !unit.Alive {
			continue
		}

		if !player.HasAliveUnits() || !computer.HasAliveUnits() {
			break
		}

		if unit.Program == nil {
			s.logger.Warn("unit has no program, skipping turn", "unit", unit.Name)
			continue
		}

		target, err := unit.Program.Attack()
		if err != nil {
			return landed, fmt.Errorf("%s failed to attack: %w", unit.Name, err)
		}

		if target != nil {
			landed++
			res.Attacks++
		}

		if s.battleLog != nil {
			s.battleLog.PrintBattleLog(unit, target)
		}
	}

	return landed, nil
}

func turnQueue(player, computer *model.Army) []*model.Unit {
	queue := append(player.AliveUnits(), computer.AliveUnits()...)

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].BaseAttack > queue[j].BaseAttack
	})

	return queue
}

func winner(player, computer *model.Army) model.Side {
	switch {
	case player.HasAliveUnits() && !computer.HasAliveUnits():
		return model.SidePlayer
	case computer.HasAliveUnits() && !player.HasAliveUnits():
		return model.SideComputer
	default:
		return model.SideNone
	}
}
