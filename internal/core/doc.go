// Package core provides the business logic layer for heroes.
//
// This package glues the game packages (preset, targeting, pathfind,
// battle) to storage and configuration. Functions here return errors
// instead of printing; UI-specific logic belongs in the cli and cmd
// packages.
//
// # Presets
//
// [GeneratePreset] builds a computer army from the unit catalog and can
// persist it. [ResolveArmy] accepts either a preset ID or an army file.
//
// # Battles
//
// [RunBattle] works on copies of the armies, so stored presets are never
// modified. The returned [model.BattleRecord] carries the full attack log
// and can be persisted with [SaveBattle].
//
// # Configuration
//
// [LoadConfig] and [SaveConfig] read and write heroes.ini.
package core
