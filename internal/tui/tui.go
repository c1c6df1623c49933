// Package tui is an interactive viewer over an in-memory todo list.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

// View selects which entries of the source list are shown.
type View int

const (
	ViewAll View = iota
	ViewPending
	ViewDone
)

func (v View) String() string {
	switch v {
	case ViewPending:
		return "pending"
	case ViewDone:
		return "done"
	default:
		return "all"
	}
}

func (v View) next() View { return (v + 1) % 3 }

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type Options struct {
	Theme ui.Theme
}

// item adapts a todo in the shown list to bubbles/list.Item.
// pos is the todo's index in that shown list.
type item struct {
	todo *model.Todo
	pos  int
}

func (i item) FilterValue() string { return i.todo.Title() }

type delegate struct{ theme ui.Theme }

func (d delegate) Height() int                             { return 1 }
func (d delegate) Spacing() int                            { return 0 }
func (d delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d delegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(item)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+d.theme.Line(it.todo))
}

// Model is the bubbletea model. It mutates the source list in place.
type Model struct {
	source *model.TodoList
	shown  *model.TodoList
	view   View

	list  list.Model
	theme ui.Theme
	keys  keyMap

	adding bool
	ti     textinput.Model
	addErr string

	status        string
	width, height int
}

// New builds a model over l. The zero Options value uses the default theme.
func New(l *model.TodoList, opts Options) Model {
	theme := opts.Theme
	if theme.Name == "" {
		theme = ui.Default()
	}
	keys := newKeyMap()

	lm := list.New(nil, delegate{theme: theme}, 0, 0)
	lm.SetShowHelp(true)
	lm.SetShowPagination(true)
	lm.SetShowStatusBar(true)
	lm.SetFilteringEnabled(true)
	lm.Styles.Title = theme.Title
	lm.Styles.HelpStyle = theme.Help
	lm.Styles.PaginationStyle = theme.Help
	lm.FilterInput.Prompt = "/ "
	lm.SetStatusBarItemName("todo", "todos")
	// f and d are ours; keep paging on the arrow keys.
	lm.KeyMap.NextPage.SetKeys("right", "l", "pgdown")
	lm.KeyMap.PrevPage.SetKeys("left", "h", "pgup")
	lm.AdditionalShortHelpKeys = keys.short
	lm.AdditionalFullHelpKeys = keys.full

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo title..."
	ti.CharLimit = 200

	m := Model{
		source: l,
		list:   lm,
		theme:  theme,
		keys:   keys,
		ti:     ti,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refresh()
	m.resize()
	return m
}

// Source is the list being edited.
func (m Model) Source() *model.TodoList { return m.source }

// Shown is the list behind the current view; it shares entries with Source.
func (m Model) Shown() *model.TodoList { return m.shown }

func (m Model) CurrentView() View { return m.view }
func (m Model) Adding() bool      { return m.adding }
func (m Model) Status() string    { return m.status }

// refresh rebuilds the shown list and the list items from the source.
func (m *Model) refresh() tea.Cmd {
	switch m.view {
	case ViewPending:
		m.shown = m.source.UndoneTodos()
	case ViewDone:
		m.shown = m.source.DoneTodos()
	default:
		m.shown = m.source
	}
	items := make([]list.Item, 0, m.shown.Len())
	for i, td := range m.shown.All() {
		items = append(items, item{todo: td, pos: i})
	}
	cmd := m.list.SetItems(items)

	title := m.theme.Header(m.source) + "  " + m.theme.Muted.Render("["+m.view.String()+"]")
	if m.source.Len() > 0 && m.source.AllDone() {
		title += "  " + m.theme.Success.Render("all done")
	}
	m.list.Title = title
	return cmd
}

func (m *Model) resize() {
	// border and padding take 4 columns and 2 rows, the status line one more row
	h := m.height - 3
	if m.adding {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 1 {
		w = 1
	}
	m.list.SetSize(w, h)
}

func (m Model) selected() (item, bool) {
	it, ok := m.list.SelectedItem().(item)
	return it, ok
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = sz.Width, sz.Height
		m.resize()
		return m, nil
	}
	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	// esc belongs to the filter while one is typed or applied.
	filterEsc := m.list.FilterState() == list.FilterApplied && km.String() == "esc"
	if !ok || m.list.FilterState() == list.Filtering || filterEsc {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	m.status = ""
	switch {
	case key.Matches(km, m.keys.quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		var err error
		if it.todo.Done() {
			err = m.shown.MarkUndoneAt(it.pos)
		} else {
			err = m.shown.MarkDoneAt(it.pos)
		}
		if err != nil {
			m.status = err.Error()
		}
		cmd := m.refresh()
		return m, cmd

	case key.Matches(km, m.keys.markAll):
		m.source.MarkAllDone()
		cmd := m.refresh()
		return m, cmd

	case key.Matches(km, m.keys.unmarkAll):
		m.source.MarkAllUndone()
		cmd := m.refresh()
		return m, cmd

	case key.Matches(km, m.keys.view):
		m.view = m.view.next()
		m.list.ResetSelected()
		cmd := m.refresh()
		return m, cmd

	case key.Matches(km, m.keys.remove):
		if m.view != ViewAll {
			m.status = "switch to the all view to remove"
			return m, nil
		}
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.source.RemoveAt(it.pos); err != nil {
			m.status = err.Error()
		}
		cmd := m.refresh()
		return m, cmd

	case key.Matches(km, m.keys.add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		m.resize()
		cmd := m.ti.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			if err := m.source.Add(model.NewTodo(title)); err != nil {
				m.addErr = err.Error()
				return m, nil
			}
			m.stopAdding()
			cmd := m.refresh()
			if m.view == ViewAll {
				m.list.Select(m.source.Len() - 1)
			}
			return m, cmd
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		title := "Add new todo"
		if m.addErr != "" {
			title += " - " + m.theme.Error.Render(m.addErr)
		}
		content += "\n" + m.theme.Panel([]string{title, m.ti.View()})
	}
	content += "\n" + m.theme.Muted.Render(m.status)
	return m.theme.Panel([]string{content})
}

// Run starts the program over l and blocks until the user quits. Changes
// are made to l directly.
func Run(l *model.TodoList, opts Options, progOpts ...tea.ProgramOption) error {
	all := append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	p := tea.NewProgram(New(l, opts), all...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
