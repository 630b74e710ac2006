package model

import "maps"

// Field geometry. The computer army stands in the first ArmyWidth columns,
// the player army in the last ArmyWidth columns.
const (
	FieldWidth  = 27
	FieldHeight = 21
	ArmyWidth   = 3
)

// AttackType describes how a unit delivers damage.
type AttackType string

const (
	AttackMelee  AttackType = "Melee"
	AttackRanged AttackType = "Ranged"
)

// Valid reports whether the attack type is one of the known values.
func (a AttackType) Valid() bool {
	return a == AttackMelee || a == AttackRanged
}

// Program is the behaviour a unit runs on its turn. Attack returns the unit
// that was hit, or nil when no target was available.
type Program interface {
	Attack() (*Unit, error)
}

// Unit is a single combatant on the field. Catalog templates use the same
// type with zero coordinates.
type Unit struct {
	// Name is unique within an army, "<UnitType> <n>"
	Name string `json:"name" yaml:"name,omitempty"`

	// UnitType identifies the template the unit was built from (e.g. "Archer")
	UnitType string `json:"unit_type" yaml:"unit_type"`

	Health     int        `json:"health" yaml:"health"`
	BaseAttack int        `json:"base_attack" yaml:"base_attack"`
	Cost       int        `json:"cost" yaml:"cost"`
	AttackType AttackType `json:"attack_type" yaml:"attack_type"`

	// AttackBonuses multiplies damage dealt, keyed by target unit type
	AttackBonuses map[string]float64 `json:"attack_bonuses,omitempty" yaml:"attack_bonuses,omitempty"`

	// DefenceBonuses multiplies damage received, keyed by attacker attack type
	DefenceBonuses map[string]float64 `json:"defence_bonuses,omitempty" yaml:"defence_bonuses,omitempty"`

	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`

	Alive bool `json:"alive" yaml:"alive"`

	Program Program `json:"-" yaml:"-"`
}

// NewUnit builds a live unit from a template at the given cell.
func NewUnit(template Unit, name string, x, y int) *Unit {
	return &Unit{
		Name:           name,
		UnitType:       template.UnitType,
		Health:         template.Health,
		BaseAttack:     template.BaseAttack,
		Cost:           template.Cost,
		AttackType:     template.AttackType,
		AttackBonuses:  maps.Clone(template.AttackBonuses),
		DefenceBonuses: maps.Clone(template.DefenceBonuses),
		X:              x,
		Y:              y,
		Alive:          true,
	}
}

// Clone returns a deep copy of the unit without its program.
func (u *Unit) Clone() *Unit {
	c := *u
	c.AttackBonuses = maps.Clone(u.AttackBonuses)
	c.DefenceBonuses = maps.Clone(u.DefenceBonuses)
	c.Program = nil

	return &c
}

// Cell returns the unit position as an Edge.
func (u *Unit) Cell() Edge {
	return Edge{X: u.X, Y: u.Y}
}

// TakeDamage lowers health and marks the unit dead once it reaches zero.
func (u *Unit) TakeDamage(damage int) {
	u.Health -= damage
	if u.Health <= 0 {
		u.Health = 0
		u.Alive = false
	}
}

// AttackBonus returns the damage multiplier against the given unit type.
func (u *Unit) AttackBonus(targetType string) float64 {
	if v, ok := u.AttackBonuses[targetType]; ok {
		return v
	}

	return 1
}

// DefenceBonus returns the damage multiplier applied to hits of the given attack type.
func (u *Unit) DefenceBonus(attackType AttackType) float64 {
	if v, ok := u.DefenceBonuses[string(attackType)]; ok {
		return v
	}

	return 1
}

// Edge is one grid cell, used as a path step.
type Edge struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// InField reports whether the cell lies on the battlefield.
func (e Edge) InField() bool {
	return e.X >= 0 && e.X < FieldWidth && e.Y >= 0 && e.Y < FieldHeight
}
