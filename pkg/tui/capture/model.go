// Package capture implements the dream capture view: a draft input, a
// symbol picker, and a transient saved toast.
package capture

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/dreamlog/pkg/dates"
	"tableflip.dev/dreamlog/pkg/glyph"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/tui/theme"
)

// toastDuration is how long the saved confirmation stays visible.
const toastDuration = 2 * time.Second

type clearToastMsg struct{}

// Model is the capture view state.
type Model struct {
	svc *journal.Service

	input       textinput.Model
	symbols     []glyph.Glyph
	symbolIndex int

	toast string
	err   string
	width int

	now func() time.Time
}

// New builds a capture view bound to the journal service.
func New(svc *journal.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "What did you dream?"
	ti.Prompt = "> "
	ti.CharLimit = 280
	ti.Focus()

	return Model{
		svc:     svc,
		input:   ti,
		symbols: glyph.DefaultSymbols(),
		now:     time.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearToastMsg:
		m.toast = ""
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m.save()
		case tea.KeyUp:
			m.symbolIndex = (m.symbolIndex - 1 + len(m.symbols)) % len(m.symbols)
			return m, nil
		case tea.KeyDown:
			m.symbolIndex = (m.symbolIndex + 1) % len(m.symbols)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// save trims the draft and persists a new entry. Whitespace-only drafts are
// a silent no-op: nothing is created, nothing is written, the draft stays.
func (m Model) save() (Model, tea.Cmd) {
	symbol := m.symbols[m.symbolIndex]
	_, err := m.svc.Add(context.Background(), m.input.Value(), symbol.Symbol)
	if errors.Is(err, journal.ErrEmptyText) {
		return m, nil
	}
	if err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.input.Reset()
	m.err = ""
	m.toast = "saved " + symbol.Symbol
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// Symbol returns the currently selected glyph.
func (m Model) Symbol() glyph.Glyph {
	return m.symbols[m.symbolIndex]
}

// Draft returns the current draft text.
func (m Model) Draft() string {
	return m.input.Value()
}

// Toast returns the visible confirmation, empty when cleared.
func (m Model) Toast() string {
	return m.toast
}

// SetDraft replaces the draft text. Used by tests.
func (m Model) SetDraft(text string) Model {
	m.input.SetValue(text)
	return m
}

// View renders the capture form.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(dates.Format(dates.DayKey(m.now()))))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewSymbols())
	b.WriteString("\n")

	switch {
	case m.err != "":
		b.WriteString(theme.Error.Render(m.err))
	case m.toast != "":
		b.WriteString(theme.Toast.Render(m.toast))
	default:
		b.WriteString(" ")
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Help.Render("enter save · ↑/↓ symbol · tab calendar · ctrl+c quit"))

	return b.String()
}

func (m Model) viewSymbols() string {
	cells := make([]string, 0, len(m.symbols))
	for i, g := range m.symbols {
		cell := " " + g.Symbol + " "
		if i == m.symbolIndex {
			cell = theme.Selected.Render(cell)
		} else {
			cell = theme.Subtle.Render(cell)
		}
		cells = append(cells, cell)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return row + "  " + theme.Subtle.Render(m.symbols[m.symbolIndex].Meaning)
}
