package app

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/dreamlog/pkg/entry"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/store"
	"tableflip.dev/dreamlog/pkg/tui/calview"
)

type memoryPersistence struct {
	mu      sync.Mutex
	entries []*entry.Entry
	loads   int
}

func (m *memoryPersistence) Load(_ context.Context) []*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
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

func newTestApp(mp *memoryPersistence) Model {
	return New(&journal.Service{Persistence: mp})
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestTabSwitchesViewAndResyncs(t *testing.T) {
	mp := &memoryPersistence{}
	m := newTestApp(mp)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	model := next.(Model)
	if model.active != calendarView {
		t.Fatal("tab should switch to the calendar view")
	}

	// Mounting a view re-reads storage.
	if _, ok := runCmd(t, cmd).(entriesLoadedMsg); !ok {
		t.Fatal("expected an entriesLoadedMsg from the mount trigger")
	}
}

func TestFocusRegainTriggersReload(t *testing.T) {
	m := newTestApp(&memoryPersistence{})

	_, cmd := m.Update(tea.FocusMsg{})
	if _, ok := runCmd(t, cmd).(entriesLoadedMsg); !ok {
		t.Fatal("focus regain should re-read storage")
	}
}

func TestStoreChangeTriggersReload(t *testing.T) {
	events := make(chan store.Event, 1)
	m := newTestApp(&memoryPersistence{}).WithEvents(events)

	_, cmd := m.Update(storeChangedMsg{})
	if cmd == nil {
		t.Fatal("expected reload + re-wait commands")
	}
}

func TestRefreshRequestReloadsCalendarCopy(t *testing.T) {
	mp := &memoryPersistence{entries: []*entry.Entry{
		{ID: "1", Date: "2026-08-22", Text: "flying", Symbol: "⭐"},
	}}
	m := newTestApp(mp)

	next, cmd := m.Update(calview.RefreshRequestMsg{})
	m = next.(Model)

	msg := runCmd(t, cmd)
	loaded, ok := msg.(entriesLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want entriesLoadedMsg", msg)
	}
	if len(loaded.entries) != 1 {
		t.Fatalf("loaded %d entries", len(loaded.entries))
	}

	next, _ = m.Update(loaded)
	m = next.(Model)
	if m.err != "" {
		t.Fatalf("unexpected error state: %q", m.err)
	}
}

func TestWatchChannelCloseIsQuiet(t *testing.T) {
	m := newTestApp(&memoryPersistence{})
	if _, cmd := m.Update(watchClosedMsg{}); cmd != nil {
		t.Fatal("a closed watch channel must not spin")
	}
}
