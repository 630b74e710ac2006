package model

import "time"

// Preset is a generated army saved for later battles.
type Preset struct {
	// ID is the unique identifier (UUID)
	ID string `json:"id"`

	// Name is an optional display name
	Name string `json:"name"`

	// MaxPoints is the budget the army was generated with
	MaxPoints int `json:"max_points"`

	Army *Army `json:"army"`

	CreatedAt time.Time `json:"created_at"`
}

// Side names one of the two armies in a battle.
type Side string

const (
	SidePlayer   Side = "player"
	SideComputer Side = "computer"
	SideNone     Side = "none"
)

// LogEntry is one attack as recorded during a battle.
type LogEntry struct {
	Round        int    `json:"round"`
	Attacker     string `json:"attacker"`
	AttackerSide Side   `json:"attacker_side"`
	Target       string `json:"target,omitempty"`
	TargetHealth int    `json:"target_health"`
	TargetAlive  bool   `json:"target_alive"`
}

// BattleRecord is the stored outcome of a simulated battle.
type BattleRecord struct {
	ID               string     `json:"id"`
	PlayerPresetID   string     `json:"player_preset_id,omitempty"`
	ComputerPresetID string     `json:"computer_preset_id,omitempty"`
	Winner           Side       `json:"winner"`
	Rounds           int        `json:"rounds"`
	Attacks          int        `json:"attacks"`
	Outcome          string     `json:"outcome"`
	Log              []LogEntry `json:"log"`
	FoughtAt         time.Time  `json:"fought_at"`
}
