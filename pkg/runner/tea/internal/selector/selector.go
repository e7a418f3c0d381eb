// Package selector renders the activity grid for a single day: numbered
// entries with completion marks, laid out in fixed-width columns, with a
// border around the selected entry.
package selector

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
)

// Option is one activity row in the grid.
type Option struct {
	Name string
	Done bool
}

// Model describes one render of the grid.
type Model struct {
	Title    string
	Options  []Option
	Selected int // index into Options, -1 when nothing is selected
	Columns  int // entries per row
	Width    int // total width in cells
}

// New returns a grid with the defaults used by the interactive view.
func New(options []Option, selected int) Model {
	return Model{
		Title:    "Activities",
		Options:  options,
		Selected: selected,
		Columns:  3,
		Width:    78,
	}
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	openStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	emptyStyle = lipgloss.NewStyle().Faint(true).Italic(true)

	selectedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
	normalBorder = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Padding(0, 1)
)

// View renders the grid.
func (m Model) View() string {
	title := titleStyle.Render(m.Title)
	if len(m.Options) == 0 {
		return title + "\n" + emptyStyle.Render("no activities yet, press c to create one")
	}

	columns := m.Columns
	if columns < 1 {
		columns = 1
	}
	cellWidth := m.Width/columns - 4 // border and padding
	if cellWidth < 8 {
		cellWidth = 8
	}

	rows := make([]string, 0, (len(m.Options)+columns-1)/columns)
	row := make([]string, 0, columns)
	for i, opt := range m.Options {
		row = append(row, m.renderCell(i, opt, cellWidth))
		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return title + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(index int, opt Option, width int) string {
	mark := "―"
	style := openStyle
	if opt.Done {
		mark = "✔"
		style = doneStyle
	}

	label := fmt.Sprintf("%s %d: %s", mark, index+1, opt.Name)
	label = truncate(label, width)
	label += padding(width - ansi.PrintableRuneWidth(label))

	if index == m.Selected {
		return selectedBorder.Render(style.Render(label))
	}
	return normalBorder.Render(style.Render(label))
}

func truncate(s string, width int) string {
	if ansi.PrintableRuneWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && ansi.PrintableRuneWidth(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func padding(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
