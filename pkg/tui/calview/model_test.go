package calview

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/dreamlog/pkg/calendar"
	"tableflip.dev/dreamlog/pkg/entry"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	entries []*entry.Entry
}

func (m *memoryPersistence) Load(_ context.Context) []*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entry.Entry(nil), m.entries...)
}

func (m *memoryPersistence) Save(_ context.Context, entries []*entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]*entry.Entry(nil), entries...)
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newAugust2026 pins the view to August 2026 with two entries on the 22nd,
// newest first.
func newAugust2026(t *testing.T) (Model, *memoryPersistence) {
	t.Helper()
	entries := []*entry.Entry{
		{ID: "2", Date: "2026-08-22", Text: "falling through clouds", Symbol: "👻"},
		{ID: "1", Date: "2026-08-22", Text: "flying over the sea", Symbol: "⭐"},
	}
	mp := &memoryPersistence{entries: append([]*entry.Entry(nil), entries...)}

	m := New(&journal.Service{Persistence: mp})
	m.now = func() time.Time {
		return time.Date(2026, time.August, 23, 9, 0, 0, 0, time.Local)
	}
	m.month = calendar.Month{Year: 2026, Month0: 7}
	m.cursor = 22
	m = m.SetEntries(mp.Load(context.Background()))
	return m, mp
}

func TestGridShowsNewestSymbolAndBadge(t *testing.T) {
	m, _ := newAugust2026(t)

	view := m.View()
	if !strings.Contains(view, "👻") {
		t.Fatal("grid should show the newest entry's symbol")
	}
	if !strings.Contains(view, "+1") {
		t.Fatal("two entries on one day should show a +1 badge")
	}
	if !strings.Contains(view, "August 2026") {
		t.Fatal("grid should carry the month title")
	}
}

func TestEmptyDayIsNotInspectable(t *testing.T) {
	m, _ := newAugust2026(t)
	m.cursor = 1 // no entries on the 1st

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.ModalOpen() {
		t.Fatal("empty day must not open the detail modal")
	}
}

func TestModalOpensForOccupiedDay(t *testing.T) {
	m, _ := newAugust2026(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.ModalOpen() {
		t.Fatal("expected the modal to open")
	}
	if m.ModalKey() != "2026-08-22" {
		t.Fatalf("modal key = %q", m.ModalKey())
	}

	view := m.View()
	if !strings.Contains(view, "falling through clouds") || !strings.Contains(view, "flying over the sea") {
		t.Fatal("modal should list every entry for the date")
	}
	if !strings.Contains(view, "August 22, 2026") {
		t.Fatal("modal should carry the formatted date")
	}
}

func TestModalCloseKey(t *testing.T) {
	m, _ := newAugust2026(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.ModalOpen() {
		t.Fatal("esc should close the modal")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m, mp := newAugust2026(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// d arms the confirmation; any key other than y/enter cancels it.
	m, _ = m.Update(keyRunes("d"))
	m, _ = m.Update(keyRunes("n"))
	if len(mp.entries) != 2 {
		t.Fatal("cancelled confirmation must not delete")
	}
	if !m.ModalOpen() {
		t.Fatal("modal should stay open after a cancelled delete")
	}
}

func TestDeleteLastEntryClosesModalAndEmptiesDay(t *testing.T) {
	m, mp := newAugust2026(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Delete the newest entry.
	m, _ = m.Update(keyRunes("d"))
	var cmd tea.Cmd
	m, cmd = m.Update(keyRunes("y"))
	if len(mp.entries) != 1 {
		t.Fatalf("persisted %d entries, want 1", len(mp.entries))
	}
	if mp.entries[0].ID != "1" {
		t.Fatal("the highlighted (newest) entry should have been removed")
	}
	if !m.ModalOpen() {
		t.Fatal("modal stays open while the bucket is non-empty")
	}
	if cmd == nil {
		t.Fatal("delete should request a storage re-read")
	}
	if _, ok := cmd().(RefreshRequestMsg); !ok {
		t.Fatal("expected a RefreshRequestMsg")
	}

	// Delete the remaining entry; the bucket empties and the modal closes.
	m, _ = m.Update(keyRunes("d"))
	m, _ = m.Update(keyRunes("y"))
	if m.ModalOpen() {
		t.Fatal("deleting the last entry for the open date must close the modal")
	}
	if len(mp.entries) != 0 {
		t.Fatalf("persisted %d entries, want 0", len(mp.entries))
	}

	view := m.View()
	if strings.Contains(view, "👻") || strings.Contains(view, "⭐") {
		t.Fatal("emptied day should render without symbols on the next grid render")
	}
}

func TestMonthNavigationKeys(t *testing.T) {
	m, _ := newAugust2026(t)

	m, _ = m.Update(keyRunes("n"))
	if m.Month() != (calendar.Month{Year: 2026, Month0: 8}) {
		t.Fatalf("next month = %+v", m.Month())
	}

	m, _ = m.Update(keyRunes("p"))
	m, _ = m.Update(keyRunes("p"))
	if m.Month() != (calendar.Month{Year: 2026, Month0: 6}) {
		t.Fatalf("prev month = %+v", m.Month())
	}

	m, _ = m.Update(keyRunes("t"))
	if m.Month() != (calendar.Month{Year: 2026, Month0: 7}) {
		t.Fatalf("today month = %+v", m.Month())
	}
	if m.cursor != 23 {
		t.Fatalf("today cursor = %d", m.cursor)
	}
}

func TestCursorClampsAcrossMonths(t *testing.T) {
	m, _ := newAugust2026(t)
	m.cursor = 31

	// September has 30 days; the cursor must clamp.
	m, _ = m.Update(keyRunes("n"))
	if m.cursor != 30 {
		t.Fatalf("cursor = %d, want 30", m.cursor)
	}
}
