package battle

import (
	"context"
	"log/slog"
	"sync"

	"github.com/inovacc/heroes/internal/model"
)

// BattleLogger is told about every attack right after it happens.
// target is nil when the unit found nothing to attack.
type BattleLogger interface {
	PrintBattleLog(attacker, target *model.Unit)
}

// RoundLogger is implemented by loggers that want round boundaries.
type RoundLogger interface {
	StartRound(round int)
}

// SlogLogger writes one structured record per attack.
type SlogLogger struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (l *SlogLogger) PrintBattleLog(attacker, target *model.Unit) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if target == nil {
		logger.Log(context.Background(), l.Level, "no target", "attacker", attacker.Name)
		return
	}

	logger.Log(context.Background(), l.Level, "attack",
		"attacker", attacker.Name,
		"target", target.Name,
		"target_health", target.Health,
		"target_alive", target.Alive,
	)
}

// Recorder keeps every attack as a model.LogEntry.
type Recorder struct {
	mu      sync.Mutex
	round   int
	sides   map[*model.Unit]model.Side
	entries []model.LogEntry
}

// NewRecorder creates a recorder that resolves attacker sides from the armies.
func NewRecorder(player, computer *model.Army) *Recorder {
	r := &Recorder{sides: make(map[*model.Unit]model.Side)}

	if player != nil {
		for _, u := range player.Units {
			r.sides[u] = model.SidePlayer
		}
	}

	if computer != nil {
		for _, u := range computer.Units {
			r.sides[u] = model.SideComputer
		}
	}

	return r
}

func (r *Recorder) StartRound(round int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.round = round
}

func (r *Recorder) PrintBattleLog(attacker, target *model.Unit) {
	r.mu.Lock()
	defer r.mu.Unlock()

	side, ok := r.sides[attacker]
	if !ok {
		side = model.SideNone
	}

	entry := model.LogEntry{
		Round:        r.round,
		Attacker:     attacker.Name,
		AttackerSide: side,
	}

	if target != nil {
		entry.Target = target.Name
		entry.TargetHealth = target.Health
		entry.TargetAlive = target.Alive
	}

	r.entries = append(r.entries, entry)
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []model.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.LogEntry, len(r.entries))
	copy(out, r.entries)

	return out
}

// MultiLogger fans attacks and rounds out to several loggers.
type MultiLogger []BattleLogger

func (m MultiLogger) PrintBattleLog(attacker, target *model.Unit) {
	for _, l := range m {
		if l != nil {
			l.PrintBattleLog(attacker, target)
		}
	}
}

func (m MultiLogger) StartRound(round int) {
	for _, l := range m {
		if rl, ok := l.(RoundLogger); ok {
			rl.StartRound(round)
		}
	}
}
