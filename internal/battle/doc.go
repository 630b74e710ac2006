// Package battle simulates a fight between the player and computer armies.
//
// A [Simulator] drives rounds; every unit acts through its [model.Program],
// normally a [UnitProgram] installed with [Arm]. After each attack the
// configured [BattleLogger] is called, which is how the command line prints
// the fight and how [Recorder] collects entries for storage.
//
//	battle.Arm(player, computer)
//	rec := battle.NewRecorder(player, computer)
//	sim := battle.NewSimulator(battle.Options{BattleLog: rec, MaxRounds: 500})
//	res, err := sim.Simulate(ctx, player, computer)
package battle
