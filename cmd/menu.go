package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/heroes/internal/cli"
	"github.com/inovacc/heroes/internal/core"
	"github.com/inovacc/heroes/internal/render"
	"github.com/spf13/cobra"
)

func runMenu(cmd *cobra.Command) error {
	for {
		finalModel, err := tea.NewProgram(cli.NewMainMenu()).Run()
		if err != nil {
			return err
		}

		choice := finalModel.(cli.MainMenuModel).GetChoice()

		if choice == "" || choice == cli.ActionExit {
			_, _ = fmt.Fprintln(os.Stdout, "Goodbye!")
			return nil
		}

		if err := runMenuAction(cmd, choice); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		_, _ = fmt.Fprintln(os.Stdout, "\nPress Enter to continue...")
		_, _ = fmt.Scanln()
	}
}

func runMenuAction(cmd *cobra.Command, action string) error {
	switch action {
	case cli.ActionGenerate:
		return runGenerate(cmd, nil)
	case cli.ActionSimulate:
		return menuSimulate(cmd)
	case cli.ActionPresets:
		return menuPresets()
	case cli.ActionHistory:
		return menuHistory()
	case cli.ActionCatalog:
		return runCatalog(cmd, nil)
	case cli.ActionConfig:
		core.ShowConfig(os.Stdout, configPath, cfg)
		return nil
	default:
		return fmt.Errorf("unknown menu action: %s", action)
	}
}

func menuSimulate(cmd *cobra.Command) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	presets, err := db.ListPresets()
	_ = db.Close()

	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}

	if len(presets) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No presets stored. Create one with: heroes generate")
		return nil
	}

	m, err := tea.NewProgram(cli.NewPresetPicker("Player army", presets)).Run()
	if err != nil {
		return err
	}

	player := m.(cli.PickerModel).SelectedPreset()
	if player == nil {
		return nil
	}

	m, err = tea.NewProgram(cli.NewPresetPicker("Computer army (esc to generate one)", presets)).Run()
	if err != nil {
		return err
	}

	args := []string{player.ID}
	if computer := m.(cli.PickerModel).SelectedPreset(); computer != nil {
		args = append(args, computer.ID)
	}

	return runSimulate(cmd, args)
}

func menuPresets() error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	presets, err := db.ListPresets()
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}

	m, err := tea.NewProgram(cli.NewPresetPicker("Presets", presets)).Run()
	if err != nil {
		return err
	}

	p := m.(cli.PickerModel).SelectedPreset()
	if p == nil {
		return nil
	}

	r := newRenderer(os.Stdout)

	if err := printPreset(os.Stdout, r, p); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprintln(os.Stdout, r.Board(nil, p.Army, render.BoardOptions{}))

	return nil
}

func menuHistory() error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer func() { _ = db.Close() }()

	battles, err := db.ListBattles()
	if err != nil {
		return fmt.Errorf("failed to list battles: %w", err)
	}

	m, err := tea.NewProgram(cli.NewBattlePicker("Battle History", battles)).Run()
	if err != nil {
		return err
	}

	rec := m.(cli.PickerModel).SelectedBattle()
	if rec == nil {
		return nil
	}

	player, computer, err := battleArmies(db, rec)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(cli.NewReplay(rec, player, computer, newRenderer(os.Stdout)), tea.WithAltScreen()).Run()

	return err
}
