package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Menu actions returned by MainMenuModel.GetChoice.
const (
	ActionGenerate = "generate"
	ActionSimulate = "simulate"
	ActionPresets  = "presets"
	ActionHistory  = "history"
	ActionCatalog  = "catalog"
	ActionConfig   = "config"
	ActionExit     = "exit"
)

type menuItem struct {
	label  string
	hint   string
	action string
}

func (i menuItem) FilterValue() string { return i.label }

// MainMenuModel lets the user pick an action with the arrow keys and enter,
// or directly with its number.
type MainMenuModel struct {
	list   list.Model
	choice string
	done   bool
}

func NewMainMenu() MainMenuModel {
	items := []list.Item{
		menuItem{label: "Generate Preset", hint: "Build a computer army within a point budget", action: ActionGenerate},
		menuItem{label: "Simulate Battle", hint: "Fight two stored presets", action: ActionSimulate},
		menuItem{label: "Presets", hint: "Browse stored presets", action: ActionPresets},
		menuItem{label: "Battle History", hint: "Replay past battles", action: ActionHistory},
		menuItem{label: "Unit Catalog", hint: "Show unit templates", action: ActionCatalog},
		menuItem{label: "Configuration", hint: "Show current settings", action: ActionConfig},
		menuItem{label: "Exit", hint: "Leave heroes", action: ActionExit},
	}

	d := lineDelegate{line: func(index int, item list.Item) string {
		if mi, ok := item.(menuItem); ok {
			return fmt.Sprintf("%d. %s", index+1, mi.label)
		}

		return ""
	}}

	l := newList("Heroes - Battle Simulator", items, d, 40, len(items)+6)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return MainMenuModel{list: l}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		switch {
		case key == "ctrl+c" || key == "q" || key == "esc":
			m.done = true
			return m, tea.Quit

		case key == "enter":
			return m.choose(m.list.Index())

		case len(key) == 1 && key[0] >= '1' && key[0] <= '9':
			if idx := int(key[0] - '1'); idx < len(m.list.Items()) {
				return m.choose(idx)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m MainMenuModel) choose(index int) (tea.Model, tea.Cmd) {
	if item, ok := m.list.Items()[index].(menuItem); ok {
		m.choice = item.action
	}

	m.done = true

	return m, tea.Quit
}

func (m MainMenuModel) View() string {
	if m.done {
		if m.choice == "" {
			return "Goodbye!\n"
		}

		return ""
	}

	hint := ""
	if item, ok := m.list.SelectedItem().(menuItem); ok {
		hint = item.hint
	}

	return "\n" + m.list.View() + "\n" + hintStyle.Render(hint) + "\n"
}

// GetChoice returns the chosen action, empty when the menu was left.
func (m MainMenuModel) GetChoice() string {
	return m.choice
}
