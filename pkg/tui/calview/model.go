// Package calview implements the calendar view: a month grid of dream
// symbols with a detail modal for inspecting and deleting a day's entries.
package calview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/dreamlog/pkg/calendar"
	"tableflip.dev/dreamlog/pkg/dates"
	"tableflip.dev/dreamlog/pkg/entry"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/tui/theme"
)

const (
	cellWidth  = 8
	modalWidth = 44
)

// RefreshRequestMsg asks the program to re-read storage and push a fresh
// collection into the views.
type RefreshRequestMsg struct{}

func refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return RefreshRequestMsg{}
	}
}

// modalState tracks the detail modal. The machine is
// closed → open(date) → closed; at most one date is open at a time.
type modalState struct {
	key     string
	index   int
	confirm bool
}

// Model is the calendar view state. It owns a local copy of the collection
// and rebuilds its date buckets whenever the copy changes.
type Model struct {
	svc *journal.Service

	month   calendar.Month
	cursor  int // 1-based day of month
	entries []*entry.Entry
	buckets map[string][]*entry.Entry

	modal *modalState
	err   string

	now func() time.Time
}

// New builds a calendar view positioned on the current month.
func New(svc *journal.Service) Model {
	now := time.Now
	m := Model{
		svc:     svc,
		now:     now,
		buckets: map[string][]*entry.Entry{},
	}
	m.month = calendar.ThisMonth(m.now())
	m.cursor = m.now().Day()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetEntries replaces the view's copy of the collection and rebuilds the
// derived buckets. If the open date's bucket emptied, the modal closes.
func (m Model) SetEntries(entries []*entry.Entry) Model {
	m.entries = entries
	m.buckets = entry.Buckets(entries)

	if m.modal != nil {
		bucket := m.buckets[m.modal.key]
		if len(bucket) == 0 {
			m.modal = nil
		} else if m.modal.index >= len(bucket) {
			m.modal.index = len(bucket) - 1
		}
	}
	return m
}

// ModalOpen reports whether the detail modal is showing.
func (m Model) ModalOpen() bool {
	return m.modal != nil
}

// ModalKey returns the open date key, empty when closed.
func (m Model) ModalKey() string {
	if m.modal == nil {
		return ""
	}
	return m.modal.key
}

// Month returns the displayed month.
func (m Model) Month() calendar.Month {
	return m.month
}

// Update processes Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.modal != nil {
		return m.updateModal(key)
	}
	return m.updateGrid(key)
}

func (m Model) updateGrid(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "left", "h":
		m.cursor = clamp(m.cursor-1, 1, m.month.Days())
	case "right", "l":
		m.cursor = clamp(m.cursor+1, 1, m.month.Days())
	case "up", "k":
		m.cursor = clamp(m.cursor-7, 1, m.month.Days())
	case "down", "j":
		m.cursor = clamp(m.cursor+7, 1, m.month.Days())
	case "p", "pgup":
		m.month = m.month.Prev()
		m.cursor = clamp(m.cursor, 1, m.month.Days())
	case "n", "pgdown":
		m.month = m.month.Next()
		m.cursor = clamp(m.cursor, 1, m.month.Days())
	case "t":
		m.month = calendar.ThisMonth(m.now())
		m.cursor = m.now().Day()
	case "enter", " ":
		// Empty days are not inspectable.
		dayKey := m.month.DayKey(m.cursor)
		if len(m.buckets[dayKey]) > 0 {
			m.modal = &modalState{key: dayKey}
		}
	}
	return m, nil
}

func (m Model) updateModal(key tea.KeyMsg) (Model, tea.Cmd) {
	modal := m.modal
	bucket := m.buckets[modal.key]

	if modal.confirm {
		switch key.String() {
		case "y", "enter":
			modal.confirm = false
			return m.deleteSelected()
		default:
			// Anything else cancels the pending delete.
			modal.confirm = false
			return m, nil
		}
	}

	switch key.String() {
	case "esc", "q":
		m.modal = nil
	case "up", "k":
		modal.index = clamp(modal.index-1, 0, len(bucket)-1)
	case "down", "j":
		modal.index = clamp(modal.index+1, 0, len(bucket)-1)
	case "d", "x":
		modal.confirm = true
	}
	return m, nil
}

// deleteSelected removes the highlighted entry, updates the local copy, and
// asks the program for an authoritative re-read. Deleting the open date's
// last entry closes the modal.
func (m Model) deleteSelected() (Model, tea.Cmd) {
	bucket := m.buckets[m.modal.key]
	if m.modal.index >= len(bucket) {
		return m, nil
	}
	target := bucket[m.modal.index]

	if _, err := m.svc.Remove(context.Background(), target.ID); err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.err = ""

	remaining, _ := entry.RemoveByID(m.entries, target.ID)
	m = m.SetEntries(remaining)
	return m, refreshCmd()
}

// View renders the grid, or the detail modal when one is open.
func (m Model) View() string {
	if m.modal != nil {
		return m.viewModal()
	}
	return m.viewGrid()
}

func (m Model) viewGrid() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(m.month.Title()))
	b.WriteString("\n\n")
	b.WriteString(theme.Header.Render(padCells("Su", "Mo", "Tu", "We", "Th", "Fr", "Sa")))
	b.WriteString("\n")

	weekday := 0
	for i := 0; i < m.month.Lead(); i++ {
		b.WriteString(strings.Repeat(" ", cellWidth))
		weekday++
	}

	for _, cell := range m.month.Grid(m.buckets, m.now()) {
		b.WriteString(m.renderCell(cell))
		weekday++
		if weekday == 7 {
			weekday = 0
			b.WriteString("\n")
		}
	}
	if weekday != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewCursorSummary())
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(theme.Error.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(theme.Help.Render("arrows move · p/n month · t today · enter details · tab capture · ctrl+c quit"))

	return b.String()
}

func (m Model) renderCell(cell calendar.Cell) string {
	symbol := cell.Symbol
	if symbol == "" {
		symbol = theme.Empty.Render("·")
	}

	content := fmt.Sprintf("%2d %s%s", cell.Day, symbol, theme.Badge.Render(cell.Badge()))

	style := theme.Empty
	if cell.HasEntries() {
		style = theme.Occupied
	}
	if cell.Today {
		style = style.Inherit(theme.Today)
	}
	if cell.Day == m.cursor {
		style = style.Inherit(theme.Selected)
	}

	rendered := style.Render(content)
	if pad := cellWidth - lipgloss.Width(rendered); pad > 0 {
		rendered += strings.Repeat(" ", pad)
	}
	return rendered
}

func (m Model) viewCursorSummary() string {
	dayKey := m.month.DayKey(m.cursor)
	bucket := m.buckets[dayKey]
	if len(bucket) == 0 {
		return theme.Subtle.Render(dates.Format(dayKey) + " — no dreams")
	}
	label := "dream"
	if len(bucket) > 1 {
		label = "dreams"
	}
	return theme.Subtle.Render(fmt.Sprintf("%s — %d %s", dates.Format(dayKey), len(bucket), label))
}

func (m Model) viewModal() string {
	modal := m.modal
	bucket := m.buckets[modal.key]

	var b strings.Builder
	b.WriteString(theme.Title.Render(dates.Format(modal.key)))
	b.WriteString("\n\n")

	for i, e := range bucket {
		marker := "  "
		if i == modal.index {
			marker = theme.Selected.Render("▸ ")
		}
		text := wordwrap.String(e.Text, modalWidth-8)
		lines := strings.Split(text, "\n")
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, e.Symbol, lines[0]))
		for _, line := range lines[1:] {
			b.WriteString("     " + line + "\n")
		}
	}

	b.WriteString("\n")
	if modal.confirm {
		b.WriteString(theme.Error.Render("delete this dream? y/n"))
	} else {
		b.WriteString(theme.Help.Render("↑/↓ select · d delete · esc close"))
	}

	return theme.Modal.Width(modalWidth).Render(b.String())
}

func padCells(labels ...string) string {
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", cellWidth-len(l)))
	}
	return strings.TrimRight(b.String(), " ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
