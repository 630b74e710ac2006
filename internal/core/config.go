package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/heroes/internal/model"
	"gopkg.in/ini.v1"
)

// LoadConfig reads the ini file at path on top of the defaults. A missing
// file is not an error.
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := file.MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to map config %s: %w", path, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path as ini.
func SaveConfig(path string, cfg model.Config) error {
	file := ini.Empty()

	if err := file.ReflectFrom(&cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// ValidateConfig rejects values the rest of the program cannot work with.
func ValidateConfig(cfg model.Config) error {
	switch {
	case cfg.Preset.MaxPoints <= 0:
		return fmt.Errorf("preset.max_points must be positive, got %d", cfg.Preset.MaxPoints)
	case cfg.Battle.MaxRounds < 0:
		return fmt.Errorf("battle.max_rounds must not be negative, got %d", cfg.Battle.MaxRounds)
	case cfg.Storage.Backend != model.BackendBolt && cfg.Storage.Backend != model.BackendSQLite:
		return fmt.Errorf("storage.backend must be %s or %s, got %q", model.BackendBolt, model.BackendSQLite, cfg.Storage.Backend)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}

	return nil
}

// ShowConfig prints the configuration
func ShowConfig(w io.Writer, path string, cfg model.Config) {
	catalog := cfg.Catalog.Path
	if catalog == "" {
		catalog = "(built-in)"
	}

	storagePath := cfg.Storage.Path
	if storagePath == "" {
		storagePath = "(application directory)"
	}

	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Config File:        %s\n", path)
	_, _ = fmt.Fprintf(w, "Preset Max Points:  %d\n", cfg.Preset.MaxPoints)
	_, _ = fmt.Fprintf(w, "Battle Max Rounds:  %d\n", cfg.Battle.MaxRounds)
	_, _ = fmt.Fprintf(w, "Storage Backend:    %s\n", cfg.Storage.Backend)
	_, _ = fmt.Fprintf(w, "Storage Path:       %s\n", storagePath)
	_, _ = fmt.Fprintf(w, "Log Level:          %s\n", cfg.Log.Level)
	_, _ = fmt.Fprintf(w, "Log Format:         %s\n", cfg.Log.Format)
	_, _ = fmt.Fprintf(w, "Unit Catalog:       %s\n", catalog)
}
