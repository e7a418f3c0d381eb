// Package teaui implements the interactive daily view: the activity grid
// for the viewed date, a year heatmap underneath, and single-key dispatch
// for toggling, editing, and day navigation.
package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/DevinLeamy/Daila/pkg/activity"
	"github.com/DevinLeamy/Daila/pkg/app"
	"github.com/DevinLeamy/Daila/pkg/daynav"
	"github.com/DevinLeamy/Daila/pkg/runner/tea/internal/heatmap"
	"github.com/DevinLeamy/Daila/pkg/runner/tea/internal/selector"
	"github.com/DevinLeamy/Daila/pkg/store"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInput
	modeConfirm
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionCreate
	actionEdit
)

const gridColumns = 3

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	nav    *daynav.Cursor
	mode   mode
	action action

	// selected indexes into activities; -1 when the list is empty.
	selected   int
	activities []activity.Activity
	completed  map[activity.ID]bool
	history    map[timeutil.Date]int

	input      textinput.Model
	editTarget activity.ID

	status string
	events <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the Service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Activity name"
	ti.CharLimit = 64
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		nav:      daynav.New(),
		mode:     modeNormal,
		action:   actionNone,
		selected: -1,
		input:    ti,
		status:   "←/→/↑/↓ select, space toggle, c create, e edit, x delete, a/d day, t today, s save+quit, q quit, ? help",
	}
	m.syncFromService()
	return m
}

// messages
type errMsg struct{ err error }
type storeChangedMsg struct{}

// Init kicks off the external change listener when one is wired.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// WatchStore points the model at a persistence change feed; external edits
// refresh the view while no unsaved changes would be lost.
func (m *Model) WatchStore(events <-chan store.Event) {
	m.events = events
}

func (m *Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// syncFromService refreshes the cached view state. The service is
// in-memory, so reads are synchronous.
func (m *Model) syncFromService() {
	if m.svc == nil {
		return
	}
	m.activities = m.svc.Activities(m.ctx)
	m.completed = m.svc.Completed(m.ctx, m.nav.Viewed())
	m.history = m.svc.History(m.ctx)
	m.clampSelection()
}

// clampSelection keeps the selection inside the active list, or at -1 when
// the list is empty.
func (m *Model) clampSelection() {
	switch {
	case len(m.activities) == 0:
		m.selected = -1
	case m.selected < 0:
		m.selected = 0
	case m.selected >= len(m.activities):
		m.selected = len(m.activities) - 1
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case storeChangedMsg:
		if m.svc != nil && !m.svc.Dirty() {
			if err := m.svc.Load(m.ctx); err != nil {
				m.status = "ERR: " + err.Error()
			} else {
				m.syncFromService()
				m.status = "Reloaded after external change"
			}
		}
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeConfirm:
			switch msg.String() {
			case "y", "Y":
				m.deleteSelected()
			case "n", "N", "esc", "q":
				m.mode = modeNormal
				m.status = "Delete cancelled"
			}
		case modeInput:
			switch msg.String() {
			case "enter":
				m.commitInput()
			case "esc":
				prev := m.action
				m.mode = modeNormal
				m.action = actionNone
				m.input.Reset()
				m.input.Blur()
				if prev == actionCreate {
					m.status = "Create cancelled"
				} else {
					m.status = "Edit cancelled"
				}
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch key := msg.String(); key {
			// selection
			case "left":
				m.moveSelection(-1)
			case "right":
				m.moveSelection(1)
			case "up":
				m.moveSelection(-gridColumns)
			case "down":
				m.moveSelection(gridColumns)

			// toggle
			case "space", " ":
				m.toggleIndex(m.selected)
			case "1", "2", "3", "4", "5", "6", "7", "8", "9":
				m.toggleIndex(int(key[0]-'0') - 1)

			// activity edits
			case "c":
				m.enterInput(actionCreate, &cmds)
			case "e":
				if m.selected >= 0 {
					m.enterInput(actionEdit, &cmds)
				}
			case "x":
				if m.selected >= 0 {
					m.mode = modeConfirm
					m.status = fmt.Sprintf("Delete %q? (y/n)", m.activities[m.selected].Name)
				}

			// day navigation
			case "a":
				m.nav.Previous()
				m.syncFromService()
			case "d":
				m.nav.Next()
				m.syncFromService()
			case "t":
				m.nav.Today()
				m.syncFromService()

			case "?":
				m.mode = modeHelp

			// save and quit / quit
			case "s":
				if m.svc != nil {
					if err := m.svc.Save(m.ctx); err != nil {
						m.status = "ERR: save failed: " + err.Error() + " (q quits without saving)"
						break
					}
				}
				return m, tea.Quit
			case "q":
				return m, tea.Quit
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) moveSelection(delta int) {
	if len(m.activities) == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 || next >= len(m.activities) {
		return
	}
	m.selected = next
}

func (m *Model) toggleIndex(index int) {
	if m.svc == nil || index < 0 || index >= len(m.activities) {
		return
	}
	a := m.activities[index]
	done, err := m.svc.Toggle(m.ctx, a.ID, m.nav.Viewed())
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.selected = index
	m.syncFromService()
	if done {
		m.status = fmt.Sprintf("Completed %s", a.Name)
	} else {
		m.status = fmt.Sprintf("Cleared %s", a.Name)
	}
}

func (m *Model) enterInput(act action, cmds *[]tea.Cmd) {
	m.mode = modeInput
	m.action = act
	if act == actionEdit {
		a := m.activities[m.selected]
		m.editTarget = a.ID
		m.input.Placeholder = "New name"
		m.input.SetValue(a.Name)
		m.input.CursorEnd()
		m.status = fmt.Sprintf("Editing %s (enter to apply, esc to cancel)", a.Name)
	} else {
		m.input.Placeholder = "New activity name"
		m.input.SetValue("")
		m.status = "New activity (enter to create, esc to cancel)"
	}
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) commitInput() {
	name := strings.TrimSpace(m.input.Value())
	prev := m.action
	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()

	if m.svc == nil || name == "" {
		m.status = "Cancelled"
		return
	}

	switch prev {
	case actionCreate:
		if _, err := m.svc.Create(m.ctx, name); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.syncFromService()
		m.selected = len(m.activities) - 1
		m.status = fmt.Sprintf("Created %s", name)
	case actionEdit:
		if err := m.svc.Rename(m.ctx, m.editTarget, name); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.syncFromService()
		m.status = fmt.Sprintf("Renamed to %s", name)
	}
}

func (m *Model) deleteSelected() {
	m.mode = modeNormal
	if m.svc == nil || m.selected < 0 || m.selected >= len(m.activities) {
		return
	}
	a := m.activities[m.selected]
	if err := m.svc.Delete(m.ctx, a.ID); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.syncFromService()
	m.status = fmt.Sprintf("Deleted %s (history kept)", a.Name)
}

var (
	dateStyle   = lipgloss.NewStyle().Bold(true)
	todayStyle  = lipgloss.NewStyle().Faint(true)
	dirtyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Italic(true)
)

// View renders the date header, the activity grid, the year heatmap, and a
// status line, with input and help overlays appended when active.
func (m Model) View() string {
	header := dateStyle.Render(m.nav.Viewed().String())
	if m.nav.OnToday() {
		header += todayStyle.Render(" (today)")
	}
	if m.svc != nil && m.svc.Dirty() {
		header += dirtyStyle.Render("  ● unsaved")
	}

	options := make([]selector.Option, 0, len(m.activities))
	for _, a := range m.activities {
		options = append(options, selector.Option{Name: a.Name, Done: m.completed[a.ID]})
	}
	grid := selector.New(options, m.selected)
	if m.termWidth > 8 {
		grid.Width = m.termWidth - 2
	}

	heat := heatmap.New(m.history, m.nav.Viewed())

	body := header + "\n\n" + grid.View() + "\n\n" + heat.View()

	if m.mode == modeInput {
		prompt := "Create: "
		if m.action == actionEdit {
			prompt = "Edit: "
		}
		body += "\n\n" + prompt + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: ←/→/↑/↓ move selection, space or 1-9 toggle, c create, e edit, x delete, a previous day, d next day, t today, s save and quit, q quit without saving"
		body += "\n\n" + helpStyle.Render(help)
	}

	return body + "\n\n" + statusStyle.Render(m.status)
}

// Run opens the interactive view and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service) error {
	m := New(svc)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if events, err := svc.Watch(watchCtx); err == nil {
		m.WatchStore(events)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
