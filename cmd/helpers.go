package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/inovacc/heroes/internal/catalog"
	"github.com/inovacc/heroes/internal/encoding"
	"github.com/inovacc/heroes/internal/model"
	"github.com/spf13/pflag"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this preset? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}

// loadCatalog reads the configured unit catalog, or the one at override.
func loadCatalog(override string) ([]model.Unit, error) {
	path := cfg.Catalog.Path
	if override != "" {
		path = override
	}

	if path != "" {
		abs, err := expandPath(path)
		if err != nil {
			return nil, err
		}

		path = abs
	}

	units, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("catalog loaded", "path", path, "units", len(units))

	return units, nil
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	data, err := encoding.Marshal(encoding.FormatJSON, v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// formatBonuses renders a bonus map as "key x1.50, ..." in key order
func formatBonuses(bonuses map[string]float64) string {
	if len(bonuses) == 0 {
		return "-"
	}

	keys := make([]string, 0, len(bonuses))
	for k := range bonuses {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s x%.2f", k, bonuses[k]))
	}

	return strings.Join(parts, ", ")
}

var (
	_ pflag.Value = (*cellValue)(nil)
	_ pflag.Value = (*cellListValue)(nil)
)

// cellValue is a pflag.Value for a field cell written as "x,y".
type cellValue struct {
	edge *model.Edge
	set  bool
}

func newCellValue(e *model.Edge) *cellValue {
	return &cellValue{edge: e}
}

func (c *cellValue) String() string {
	if c.edge == nil || !c.set {
		return ""
	}

	return fmt.Sprintf("%d,%d", c.edge.X, c.edge.Y)
}

func (c *cellValue) Set(s string) error {
	e, err := parseCell(s)
	if err != nil {
		return err
	}

	*c.edge = e
	c.set = true

	return nil
}

func (c *cellValue) Type() string { return "cell" }

// cellListValue collects repeated cell flags.
type cellListValue struct {
	cells *[]model.Edge
}

func (c *cellListValue) String() string {
	if c.cells == nil {
		return ""
	}

	parts := make([]string, 0, len(*c.cells))
	for _, e := range *c.cells {
		parts = append(parts, fmt.Sprintf("%d,%d", e.X, e.Y))
	}

	return strings.Join(parts, ";")
}

func (c *cellListValue) Set(s string) error {
	e, err := parseCell(s)
	if err != nil {
		return err
	}

	*c.cells = append(*c.cells, e)

	return nil
}

func (c *cellListValue) Type() string { return "cells" }

func parseCell(s string) (model.Edge, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return model.Edge{}, fmt.Errorf("cell %q must be written as x,y", s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return model.Edge{}, fmt.Errorf("cell %q: invalid x: %w", s, err)
	}

	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return model.Edge{}, fmt.Errorf("cell %q: invalid y: %w", s, err)
	}

	e := model.Edge{X: x, Y: y}
	if !e.InField() {
		return model.Edge{}, fmt.Errorf("cell %q is outside the %dx%d field", s, model.FieldWidth, model.FieldHeight)
	}

	return e, nil
}
