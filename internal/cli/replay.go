package cli

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/heroes/internal/battle"
	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/render"
)

// boardLines is the height of a framed board.
const boardLines = model.FieldHeight + 3

type entryItem struct {
	entry model.LogEntry
}

func (i entryItem) FilterValue() string { return i.entry.Attacker + " " + i.entry.Target }

// ReplayModel steps through a recorded battle. When the starting armies are
// known the board shows the state after the selected attack.
type ReplayModel struct {
	list     list.Model
	renderer *render.Renderer
	record   *model.BattleRecord
	player   *model.Army
	computer *model.Army
}

// NewReplay creates a replay viewer. player and computer are the armies as
// they stood before the battle; both may be nil.
func NewReplay(rec *model.BattleRecord, player, computer *model.Army, r *render.Renderer) ReplayModel {
	items := make([]list.Item, len(rec.Log))
	for i, e := range rec.Log {
		items[i] = entryItem{entry: e}
	}

	d := lineDelegate{line: func(_ int, item list.Item) string {
		if ei, ok := item.(entryItem); ok {
			return r.LogLine(ei.entry)
		}

		return ""
	}}

	l := newList("Battle "+rec.ID, items, d, 80, 10)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)

	return ReplayModel{list: l, renderer: r, record: rec, player: player, computer: computer}
}

func (m ReplayModel) Init() tea.Cmd {
	return nil
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height
		if m.hasBoard() {
			height -= boardLines + 2
		}

		m.list.SetSize(msg.Width, max(5, height))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ReplayModel) View() string {
	out := "\n"

	if m.hasBoard() {
		out += m.board() + "\n"
	}

	out += m.renderer.Outcome(m.record) + "\n\n"

	return out + m.list.View()
}

func (m ReplayModel) hasBoard() bool {
	return m.player != nil && m.computer != nil
}

// board replays the log up to the selected entry on fresh copies.
func (m ReplayModel) board() string {
	player, computer, marked := m.state()

	return m.renderer.Board(player, computer, render.BoardOptions{Marked: marked})
}

// state returns both armies after the selected entry together with the
// attacker and target of that entry. Names are only unique within an army,
// so each one is looked up on its own side.
func (m ReplayModel) state() (player, computer *model.Army, marked []*model.Unit) {
	player, computer = m.player.Clone(), m.computer.Clone()

	idx := m.list.Index()
	if len(m.record.Log) == 0 {
		idx = -1
	}

	battle.Replay(player, computer, m.record.Log[:idx+1])

	if idx < 0 {
		return player, computer, nil
	}

	e := m.record.Log[idx]

	own, enemy := player, computer
	if e.AttackerSide == model.SideComputer {
		own, enemy = computer, player
	}

	for _, u := range []*model.Unit{findUnit(own, e.Attacker), findUnit(enemy, e.Target)} {
		if u != nil {
			marked = append(marked, u)
		}
	}

	return player, computer, marked
}

func findUnit(a *model.Army, name string) *model.Unit {
	if name == "" {
		return nil
	}

	for _, u := range a.Units {
		if u != nil && u.Name == name {
			return u
		}
	}

	return nil
}
