package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/heroes/internal/battle"
	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/preset"
	"github.com/inovacc/heroes/internal/store"
	"github.com/inovacc/heroes/internal/targeting"
)

// BattleOptions configures RunBattle.
type BattleOptions struct {
	Player   *model.Army
	Computer *model.Army

	PlayerPresetID   string
	ComputerPresetID string

	MaxRounds int

	// BattleLog receives attacks in addition to the recorder; may be nil
	BattleLog battle.BattleLogger

	Logger *slog.Logger
}

// RunBattle simulates a fight on copies of the given armies and returns the
// record. A player army standing on the computer side is mirrored first.
// Stalemates and round limits end the battle without a winner and are not
// reported as errors.
func RunBattle(ctx context.Context, opts BattleOptions) (*model.BattleRecord, error) {
	if opts.Player == nil || opts.Computer == nil {
		return nil, errors.New("both armies are required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	player, computer := PrepareArmies(opts.Player, opts.Computer)

	battle.Arm(player, computer)

	recorder := battle.NewRecorder(player, computer)

	var sink battle.BattleLogger = recorder
	if opts.BattleLog != nil {
		sink = battle.MultiLogger{recorder, opts.BattleLog}
	}

	sim := battle.NewSimulator(battle.Options{
		BattleLog: sink,
		MaxRounds: opts.MaxRounds,
		Logger:    logger,
	})

	started := time.Now()

	res, err := sim.Simulate(ctx, player, computer)

	outcome := OutcomeFinished

	switch {
	case errors.Is(err, battle.ErrStalemate):
		outcome = OutcomeStalemate
	case errors.Is(err, battle.ErrRoundLimit):
		outcome = OutcomeRoundLimit
	case err != nil:
		return nil, fmt.Errorf("battle simulation failed: %w", err)
	}

	logger.Info("battle finished",
		"winner", res.Winner,
		"outcome", outcome,
		"rounds", res.Rounds,
		"attacks", res.Attacks,
		"duration", time.Since(started),
	)

	return &model.BattleRecord{
		ID:               uuid.New().String(),
		PlayerPresetID:   opts.PlayerPresetID,
		ComputerPresetID: opts.ComputerPresetID,
		Winner:           res.Winner,
		Rounds:           res.Rounds,
		Attacks:          res.Attacks,
		Outcome:          string(outcome),
		Log:              recorder.Entries(),
		FoughtAt:         started,
	}, nil
}

// PrepareArmies returns copies of both armies as they line up for a battle.
// A player army standing on the computer side is mirrored.
func PrepareArmies(player, computer *model.Army) (*model.Army, *model.Army) {
	p, c := player.Clone(), computer.Clone()

	if p != nil && len(p.Units) > 0 && targeting.IsLeftArmy(p) {
		p = preset.Mirror(p)
	}

	return p, c
}

// SaveBattle persists a record if a store is given.
func SaveBattle(db store.Store, rec *model.BattleRecord) error {
	if db == nil || rec == nil {
		return nil
	}

	if err := db.SaveBattle(rec); err != nil {
		return fmt.Errorf("failed to save battle: %w", err)
	}

	return nil
}

// ExposedUnits returns the units of army that an enemy may attack right now.
func ExposedUnits(army *model.Army) []*model.Unit {
	return targeting.SuitableUnits(targeting.GroupByColumn(army.AliveUnits()), targeting.IsLeftArmy(army))
}
