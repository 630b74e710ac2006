// Package model defines the data structures used throughout heroes.
//
// These models are shared by the game logic, the storage layer and the
// command line. Programs attached to units are runtime-only and never
// serialized.
//
// # Unit
//
// The [Unit] struct is both a catalog template and a combatant on the field:
//
//	type Unit struct {
//	    Name       string     // "<UnitType> <n>" inside an army
//	    UnitType   string     // template name, e.g. "Archer"
//	    Health     int
//	    BaseAttack int
//	    Cost       int
//	    AttackType AttackType // Melee or Ranged
//	    X, Y       int        // cell on the 27x21 field
//	    Alive      bool
//	}
//
// # Army
//
// An [Army] is an ordered list of units plus the points spent on them.
// Order matters: it breaks ties in the battle turn queue.
//
// # Config
//
// The [Config] struct mirrors the sections of heroes.ini.
package model
