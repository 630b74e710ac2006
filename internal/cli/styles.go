package cli

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().MarginLeft(2).Foreground(lipgloss.Color("205")).Bold(true)
	rowStyle    = lipgloss.NewStyle().PaddingLeft(4)
	cursorStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("39"))
	hintStyle   = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("240"))

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	idStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// lineDelegate draws every item on a single line; the item under the
// cursor gets a marker.
type lineDelegate struct {
	line func(index int, item list.Item) string
}

func (d lineDelegate) Height() int                             { return 1 }
func (d lineDelegate) Spacing() int                            { return 0 }
func (d lineDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	text := d.line(index, item)
	if text == "" {
		return
	}

	if index == m.Index() {
		text = cursorStyle.Render("▸ ") + text
	} else {
		text = rowStyle.Render(text)
	}

	_, _ = io.WriteString(w, text)
}

// newList builds a list with the package styles applied.
func newList(title string, items []list.Item, d list.ItemDelegate, width, height int) list.Model {
	defaults := list.DefaultStyles()

	l := list.New(items, d, width, height)
	l.Title = title
	l.Styles.Title = headerStyle
	l.Styles.PaginationStyle = defaults.PaginationStyle.PaddingLeft(4)
	l.Styles.HelpStyle = defaults.HelpStyle.PaddingLeft(4).PaddingBottom(1)

	return l
}
