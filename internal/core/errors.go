package core

import (
	"errors"
	"fmt"
)

// ErrEmptyArmy is returned when the catalog cannot afford a single unit.
var ErrEmptyArmy = errors.New("no unit fits into the point budget")

// InvalidPointsError indicates a non-positive point budget
type InvalidPointsError struct {
	Points int
}

func (e *InvalidPointsError) Error() string {
	return fmt.Sprintf("point budget must be positive, got %d", e.Points)
}

// InvalidArmyError reports an army file that cannot take part in a battle.
type InvalidArmyError struct {
	Path   string
	Unit   string
	Reason string
}

func (e *InvalidArmyError) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("invalid army %s: %s", e.Path, e.Reason)
	}

	return fmt.Sprintf("invalid army %s: unit %q: %s", e.Path, e.Unit, e.Reason)
}

// Outcome describes how a simulation ended
type Outcome string

const (
	OutcomeFinished   Outcome = "finished"
	OutcomeStalemate  Outcome = "stalemate"
	OutcomeRoundLimit Outcome = "round limit"
)
