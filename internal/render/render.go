// Package render draws the battlefield and battle logs for the terminal.
package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/heroes/internal/model"
)

const (
	emptyCell = '.'
	pathCell  = '*'
)

// Renderer turns game state into printable text. A plain renderer never
// emits escape sequences.
type Renderer struct {
	plain bool

	player   lipgloss.Style
	computer lipgloss.Style
	marked   lipgloss.Style
	path     lipgloss.Style
	dim      lipgloss.Style
	title    lipgloss.Style
	frame    lipgloss.Style
	good     lipgloss.Style
	bad      lipgloss.Style
}

// New creates a renderer. Pass plain=true when output is not a terminal.
func New(plain bool) *Renderer {
	return &Renderer{
		plain:    plain,
		player:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		computer: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		marked:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
		path:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
		good:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		bad:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if r.plain {
		return s
	}

	return style.Render(s)
}

// BoardOptions adds overlays to a board.
type BoardOptions struct {
	// Path cells are drawn where no unit stands
	Path []model.Edge

	// Marked units are highlighted
	Marked []*model.Unit
}

// Board draws the field with one line per Y coordinate. Player units use
// the upper-case initial of their type, computer units the lower-case one.
// Dead units are not drawn.
func (r *Renderer) Board(player, computer *model.Army, opts BoardOptions) string {
	type cell struct {
		glyph rune
		style *lipgloss.Style
	}

	grid := make([][]cell, model.FieldHeight)
	for y := range grid {
		grid[y] = make([]cell, model.FieldWidth)
		for x := range grid[y] {
			grid[y][x] = cell{glyph: emptyCell, style: &r.dim}
		}
	}

	for _, e := range opts.Path {
		if e.InField() {
			grid[e.Y][e.X] = cell{glyph: pathCell, style: &r.path}
		}
	}

	place := func(army *model.Army, upper bool, style *lipgloss.Style) {
		if army == nil {
			return
		}

		for _, u := range army.Units {
			if u == nil || !u.Alive || !u.Cell().InField() {
				continue
			}

			grid[u.Y][u.X] = cell{glyph: Glyph(u.UnitType, upper), style: style}
		}
	}

	place(computer, false, &r.computer)
	place(player, true, &r.player)

	for _, u := range opts.Marked {
		if u != nil && u.Alive && u.Cell().InField() {
			grid[u.Y][u.X].style = &r.marked
		}
	}

	var b strings.Builder

	b.WriteString("   ")

	for x := range model.FieldWidth {
		b.WriteString(r.paint(r.dim, fmt.Sprint(x%10)))
	}

	for y, row := range grid {
		b.WriteString("\n")
		b.WriteString(r.paint(r.dim, fmt.Sprintf("%2d ", y)))

		for _, c := range row {
			b.WriteString(r.paint(*c.style, string(c.glyph)))
		}
	}

	if r.plain {
		return b.String()
	}

	return r.frame.Render(b.String())
}

// Glyph returns the single character drawn for a unit type.
func Glyph(unitType string, upper bool) rune {
	if unitType == "" {
		return '?'
	}

	r, _ := utf8.DecodeRuneInString(unitType)
	if r == utf8.RuneError {
		return '?'
	}

	if upper {
		return unicode.ToUpper(r)
	}

	return unicode.ToLower(r)
}

// Title renders a heading line.
func (r *Renderer) Title(s string) string {
	return r.paint(r.title, s)
}

// LogLine renders one recorded attack.
func (r *Renderer) LogLine(e model.LogEntry) string {
	attacker := r.side(e.AttackerSide, fmt.Sprintf("%s (%s)", e.Attacker, e.AttackerSide))
	prefix := r.paint(r.dim, fmt.Sprintf("round %3d", e.Round))

	if e.Target == "" {
		return fmt.Sprintf("%s  %s has no target", prefix, attacker)
	}

	status := r.paint(r.good, fmt.Sprintf("%d hp left", e.TargetHealth))
	if !e.TargetAlive {
		status = r.paint(r.bad, "killed")
	}

	return fmt.Sprintf("%s  %s hits %s, %s", prefix, attacker, e.Target, status)
}

func (r *Renderer) side(s model.Side, text string) string {
	switch s {
	case model.SidePlayer:
		return r.paint(r.player, text)
	case model.SideComputer:
		return r.paint(r.computer, text)
	default:
		return text
	}
}

// Outcome summarizes a battle record in one line.
func (r *Renderer) Outcome(rec *model.BattleRecord) string {
	var result string

	switch rec.Winner {
	case model.SidePlayer:
		result = r.paint(r.good, "player wins")
	case model.SideComputer:
		result = r.paint(r.bad, "computer wins")
	default:
		result = fmt.Sprintf("no winner (%s)", rec.Outcome)
	}

	return fmt.Sprintf("%s after %d rounds and %d attacks", result, rec.Rounds, rec.Attacks)
}
