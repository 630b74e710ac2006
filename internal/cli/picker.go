package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/heroes/internal/model"
)

const timeFormat = "2006-01-02 15:04"

type presetItem struct {
	preset model.Preset
}

func (i presetItem) Title() string {
	name := i.preset.Name
	if name == "" {
		name = "(unnamed)"
	}

	return fmt.Sprintf("%s %s", name, idStyle.Render(i.preset.ID))
}

func (i presetItem) Description() string {
	units, points := 0, 0
	if i.preset.Army != nil {
		units, points = len(i.preset.Army.Units), i.preset.Army.Points
	}

	return fmt.Sprintf("%d units | %d/%d points | %s",
		units, points, i.preset.MaxPoints, i.preset.CreatedAt.Format(timeFormat))
}

func (i presetItem) FilterValue() string {
	return i.preset.Name + " " + i.preset.ID
}

type battleItem struct {
	battle model.BattleRecord
}

func (i battleItem) Title() string {
	var winner string

	switch i.battle.Winner {
	case model.SidePlayer:
		winner = winStyle.Render("player wins")
	case model.SideComputer:
		winner = lossStyle.Render("computer wins")
	default:
		winner = i.battle.Outcome
	}

	return fmt.Sprintf("%s %s", winner, idStyle.Render(i.battle.ID))
}

func (i battleItem) Description() string {
	return fmt.Sprintf("%d rounds | %d attacks | %s",
		i.battle.Rounds, i.battle.Attacks, i.battle.FoughtAt.Format(timeFormat))
}

func (i battleItem) FilterValue() string {
	return i.battle.ID
}

// PickerModel lets the user pick one stored preset or battle.
type PickerModel struct {
	list     list.Model
	selected list.Item
	quitting bool
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			m.selected = m.list.SelectedItem()

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// SelectedPreset returns the chosen preset or nil.
func (m PickerModel) SelectedPreset() *model.Preset {
	if i, ok := m.selected.(presetItem); ok {
		return &i.preset
	}

	return nil
}

// SelectedBattle returns the chosen battle or nil.
func (m PickerModel) SelectedBattle() *model.BattleRecord {
	if i, ok := m.selected.(battleItem); ok {
		return &i.battle
	}

	return nil
}

func newPicker(title string, items []list.Item) PickerModel {
	l := newList(title, items, list.NewDefaultDelegate(), 0, 0)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return PickerModel{list: l}
}

// NewPresetPicker lists presets for selection.
func NewPresetPicker(title string, presets []model.Preset) PickerModel {
	items := make([]list.Item, len(presets))
	for i, p := range presets {
		items[i] = presetItem{preset: p}
	}

	return newPicker(title, items)
}

// NewBattlePicker lists battle records for selection.
func NewBattlePicker(title string, battles []model.BattleRecord) PickerModel {
	items := make([]list.Item, len(battles))
	for i, b := range battles {
		items[i] = battleItem{battle: b}
	}

	return newPicker(title, items)
}
