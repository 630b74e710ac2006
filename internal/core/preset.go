package core

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/heroes/internal/encoding"
	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/preset"
	"github.com/inovacc/heroes/internal/store"
)

// GenerateOptions configures preset generation.
type GenerateOptions struct {
	Catalog   []model.Unit
	MaxPoints int
	Name      string

	// Save persists the preset when a store is given
	Save bool
}

// GeneratePreset builds a computer army from the catalog and optionally
// stores it.
func GeneratePreset(db store.Store, opts GenerateOptions) (*model.Preset, error) {
	if opts.MaxPoints <= 0 {
		return nil, &InvalidPointsError{Points: opts.MaxPoints}
	}

	army := preset.Generate(opts.Catalog, opts.MaxPoints)
	if len(army.Units) == 0 {
		return nil, ErrEmptyArmy
	}

	p := &model.Preset{
		ID:        uuid.New().String(),
		Name:      opts.Name,
		MaxPoints: opts.MaxPoints,
		Army:      army,
		CreatedAt: time.Now(),
	}

	if opts.Save && db != nil {
		if err := db.SavePreset(p); err != nil {
			return nil, fmt.Errorf("failed to save preset: %w", err)
		}
	}

	return p, nil
}

// ResolveArmy loads an army by reference. A reference naming an existing
// file is read as JSON or YAML; anything else is looked up as a preset ID.
// The returned preset ID is empty for files. File units with health left
// start alive whatever their alive key says.
func ResolveArmy(db store.Store, ref string) (*model.Army, string, error) {
	if _, err := os.Stat(ref); err == nil {
		army, err := encoding.LoadFile[model.Army](ref)
		if err != nil {
			return nil, "", err
		}

		if err := checkArmyFile(ref, army); err != nil {
			return nil, "", err
		}

		return army, "", nil
	}

	if db == nil {
		return nil, "", fmt.Errorf("%s: %w", ref, model.ErrNotFound)
	}

	p, err := db.GetPreset(ref)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, "", fmt.Errorf("no preset or army file named %q: %w", ref, err)
		}

		return nil, "", err
	}

	return p.Army, p.ID, nil
}

// checkArmyFile drops empty entries, revives units with health and rejects
// armies the simulator cannot place.
func checkArmyFile(path string, army *model.Army) error {
	names := make(map[string]bool, len(army.Units))
	cells := make(map[model.Edge]bool, len(army.Units))
	units := army.Units[:0]
	living := 0

	for _, u := range army.Units {
		if u == nil {
			continue
		}

		switch {
		case u.Name == "":
			return &InvalidArmyError{Path: path, Reason: fmt.Sprintf("unit at %d,%d has no name", u.X, u.Y)}
		case names[u.Name]:
			return &InvalidArmyError{Path: path, Unit: u.Name, Reason: "duplicate name"}
		case !u.Cell().InField():
			return &InvalidArmyError{Path: path, Unit: u.Name, Reason: fmt.Sprintf("cell %d,%d is outside the %dx%d field", u.X, u.Y, model.FieldWidth, model.FieldHeight)}
		case cells[u.Cell()]:
			return &InvalidArmyError{Path: path, Unit: u.Name, Reason: fmt.Sprintf("cell %d,%d is already taken", u.X, u.Y)}
		}

		names[u.Name] = true
		cells[u.Cell()] = true

		u.Alive = u.Health > 0
		if u.Alive {
			living++
		}

		units = append(units, u)
	}

	if living == 0 {
		return &InvalidArmyError{Path: path, Reason: "no living units"}
	}

	army.Units = units

	return nil
}
