// Package catalog loads the unit templates armies are generated from.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/inovacc/heroes/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed units.yaml
var builtin []byte

// InvalidTemplateError reports a unit template that cannot be used.
type InvalidTemplateError struct {
	UnitType string
	Reason   string
}

func (e *InvalidTemplateError) Error() string {
	if e.UnitType == "" {
		return fmt.Sprintf("invalid unit template: %s", e.Reason)
	}

	return fmt.Sprintf("invalid unit template %q: %s", e.UnitType, e.Reason)
}

// ErrEmptyCatalog is returned when a catalog defines no units.
var ErrEmptyCatalog = errors.New("catalog defines no units")

type file struct {
	Units []model.Unit `yaml:"units"`
}

// Default returns the built-in catalog.
func Default() ([]model.Unit, error) {
	return Parse(builtin)
}

// Load reads a catalog from a YAML file. An empty path means the built-in one.
func Load(path string) ([]model.Unit, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	units, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return units, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) ([]model.Unit, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(f.Units); err != nil {
		return nil, err
	}

	return f.Units, nil
}

// Validate checks every template and rejects duplicate types.
func Validate(units []model.Unit) error {
	if len(units) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(units))

	for _, u := range units {
		switch {
		case u.UnitType == "":
			return &InvalidTemplateError{Reason: "unit_type is required"}
		case seen[u.UnitType]:
			return &InvalidTemplateError{UnitType: u.UnitType, Reason: "duplicate unit type"}
		case u.Health <= 0:
			return &InvalidTemplateError{UnitType: u.UnitType, Reason: "health must be positive"}
		case u.BaseAttack <= 0:
			return &InvalidTemplateError{UnitType: u.UnitType, Reason: "base_attack must be positive"}
		case u.Cost <= 0:
			return &InvalidTemplateError{UnitType: u.UnitType, Reason: "cost must be positive"}
		case !u.AttackType.Valid():
			return &InvalidTemplateError{UnitType: u.UnitType, Reason: fmt.Sprintf("unknown attack_type %q", u.AttackType)}
		}

		for k, v := range u.AttackBonuses {
			if v < 0 {
				return &InvalidTemplateError{UnitType: u.UnitType, Reason: fmt.Sprintf("negative attack bonus for %s", k)}
			}
		}

		for k, v := range u.DefenceBonuses {
			if v < 0 {
				return &InvalidTemplateError{UnitType: u.UnitType, Reason: fmt.Sprintf("negative defence bonus for %s", k)}
			}
		}

		seen[u.UnitType] = true
	}

	return nil
}
