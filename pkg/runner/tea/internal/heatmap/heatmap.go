// Package heatmap renders a year of completion counts as a compact grid.
// Days run down each column, columns advance through the year, month labels
// sit above the grid and faint rules separate the months.
package heatmap

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Model describes one render of the heatmap.
type Model struct {
	Start     timeutil.Date // inclusive
	End       timeutil.Date // inclusive
	Rows      int
	Counts    map[timeutil.Date]int
	Highlight timeutil.Date // marks the viewed date; zero disables
}

// New returns a heatmap covering the calendar year of the highlighted date.
func New(counts map[timeutil.Date]int, highlight timeutil.Date) Model {
	year := highlight.Year
	if highlight.IsZero() {
		year = timeutil.Today().Year
	}
	return Model{
		Start:     timeutil.Date{Year: year, Month: 1, Day: 1},
		End:       timeutil.Date{Year: year, Month: 12, Day: 31},
		Rows:      7,
		Counts:    counts,
		Highlight: highlight,
	}
}

const cell = "▄"

var (
	labelStyle     = lipgloss.NewStyle().Faint(true)
	borderStyle    = lipgloss.NewStyle().Faint(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// Heat buckets from no completions to three or more.
	heatStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	}
)

// Columns returns the number of day columns in the grid.
func (m Model) Columns() int {
	days := m.End.DaysSince(m.Start) + 1
	return (days + m.Rows - 1) / m.Rows
}

// Width returns the rendered width in cells: two per column, one for the
// glyph and one for the separator gap.
func (m Model) Width() int {
	return m.Columns() * 2
}

// Height returns the rendered height in lines, including the label row.
func (m Model) Height() int {
	return m.Rows + 1
}

// Position returns the grid cell for a date. Days fill columns top to
// bottom before advancing, mirroring how the records accumulate over the
// year rather than aligning to weekdays.
func (m Model) Position(d timeutil.Date) (col, row int, ok bool) {
	days := d.DaysSince(m.Start)
	if days < 0 || d.After(m.End) {
		return 0, 0, false
	}
	return days / m.Rows, days % m.Rows, true
}

// DateAt is the inverse of Position.
func (m Model) DateAt(col, row int) timeutil.Date {
	return m.Start.AddDays(col*m.Rows + row)
}

// View renders the heatmap.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.labelLine())

	for row := 0; row < m.Rows; row++ {
		b.WriteByte('\n')
		for col := 0; col < m.Columns(); col++ {
			date := m.DateAt(col, row)
			if date.After(m.End) {
				b.WriteString("  ")
				continue
			}
			b.WriteString(m.renderCell(date))
			b.WriteString(m.renderGap(date, col, row))
		}
	}
	return b.String()
}

func (m Model) renderCell(date timeutil.Date) string {
	if date == m.Highlight {
		return highlightStyle.Render(cell)
	}
	bucket := m.Counts[date]
	if bucket >= len(heatStyles) {
		bucket = len(heatStyles) - 1
	}
	return heatStyles[bucket].Render(cell)
}

// renderGap draws the separator after a cell: a faint rule when the next
// column starts a new month, otherwise a space.
func (m Model) renderGap(date timeutil.Date, col, row int) string {
	next := m.DateAt(col+1, row)
	if !next.After(m.End) && next.Month != date.Month {
		if row == 0 {
			return borderStyle.Render("╷")
		}
		return borderStyle.Render("│")
	}
	return " "
}

// labelLine writes abbreviated month names above the columns where each
// month begins.
func (m Model) labelLine() string {
	width := m.Width()
	line := make([]byte, width)
	for i := range line {
		line[i] = ' '
	}

	last := timeutil.Date{}
	for col := 0; col < m.Columns(); col++ {
		date := m.DateAt(col, 0)
		if date.After(m.End) {
			break
		}
		if !last.IsZero() && date.Month == last.Month {
			last = date
			continue
		}
		label := date.Time().Format("Jan")
		x := col * 2
		if x+len(label) > width {
			break
		}
		copy(line[x:], label)
		last = date
	}
	return labelStyle.Render(string(line))
}
