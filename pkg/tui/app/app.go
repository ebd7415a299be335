// Package app wires the capture and calendar views into one Bubble Tea
// program. The two views never share a live collection: each holds its own
// copy, and the program re-reads storage on the defined resynchronization
// triggers — view mount/switch, terminal focus regain, and change events
// from the store watcher (writes made by other processes).
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/dreamlog/pkg/entry"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/store"
	"tableflip.dev/dreamlog/pkg/tui/calview"
	"tableflip.dev/dreamlog/pkg/tui/capture"
	"tableflip.dev/dreamlog/pkg/tui/theme"
)

type view int

const (
	captureView view = iota
	calendarView
)

type entriesLoadedMsg struct {
	entries []*entry.Entry
}

type loadFailedMsg struct {
	err error
}

type storeChangedMsg struct{}

type watchClosedMsg struct{}

// Model is the top-level program state.
type Model struct {
	svc *journal.Service

	active  view
	capture capture.Model
	cal     calview.Model

	events <-chan store.Event

	err    string
	width  int
	height int
}

// New builds the program model around a journal service.
func New(svc *journal.Service) Model {
	return Model{
		svc:     svc,
		capture: capture.New(svc),
		cal:     calview.New(svc),
	}
}

// WithEvents attaches a store watch channel for cross-process resync.
func (m Model) WithEvents(events <-chan store.Event) Model {
	m.events = events
	return m
}

// Init implements tea.Model: initial mount loads the collection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.waitCmd(), m.capture.Init())
}

func (m Model) loadCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		entries, err := svc.Entries(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return entriesLoadedMsg{entries: entries}
	}
}

func (m Model) waitCmd() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{}
	}
}

// Update processes Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.err = ""
		m.cal = m.cal.SetEntries(msg.entries)
		return m, nil

	case loadFailedMsg:
		m.err = msg.err.Error()
		return m, nil

	case storeChangedMsg:
		// Another process rewrote the snapshot.
		return m, tea.Batch(m.loadCmd(), m.waitCmd())

	case watchClosedMsg:
		return m, nil

	case tea.FocusMsg:
		return m, m.loadCmd()

	case calview.RefreshRequestMsg:
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.capture, _ = m.capture.Update(msg)
		m.cal, _ = m.cal.Update(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.switchView()
		case "q":
			// q quits from the calendar grid; the capture input and the
			// modal consume it themselves.
			if m.active == calendarView && !m.cal.ModalOpen() {
				return m, tea.Quit
			}
		}
	}

	return m.delegate(msg)
}

// switchView flips between the two views. Mounting a view is a
// resynchronization trigger, so the collection is re-read.
func (m Model) switchView() (tea.Model, tea.Cmd) {
	if m.active == captureView {
		m.active = calendarView
	} else {
		m.active = captureView
	}
	return m, m.loadCmd()
}

func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case captureView:
		m.capture, cmd = m.capture.Update(msg)
	case calendarView:
		m.cal, cmd = m.cal.Update(msg)
	}
	return m, cmd
}

// View renders the tab bar and the active view.
func (m Model) View() string {
	tabs := m.viewTabs()
	var body string
	switch m.active {
	case captureView:
		body = m.capture.View()
	case calendarView:
		body = m.cal.View()
	}

	out := lipgloss.JoinVertical(lipgloss.Left, tabs, "", body)
	if m.err != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, "", theme.Error.Render(m.err))
	}
	return out
}

func (m Model) viewTabs() string {
	capTab := theme.TabIdle.Render("✎ capture")
	calTab := theme.TabIdle.Render("☾ calendar")
	if m.active == captureView {
		capTab = theme.TabActive.Render("✎ capture")
	} else {
		calTab = theme.TabActive.Render("☾ calendar")
	}
	return capTab + theme.TabIdle.Render("  │  ") + calTab
}

// Run launches the TUI. The store watch is best effort: when it cannot be
// established the program still works off the remaining resync triggers.
func Run(svc *journal.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := New(svc)
	if events, err := svc.Watch(ctx); err == nil {
		m = m.WithEvents(events)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
