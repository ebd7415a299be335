package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/dreamlog/pkg/dates"
)

// New creates an entry stamped with the current local day key. Text is
// trimmed; callers are expected to reject whitespace-only drafts before
// calling New.
func New(text, symbol string) *Entry {
	return &Entry{
		ID:     uuid.NewString(),
		Date:   dates.DayKey(time.Now()),
		Text:   strings.TrimSpace(text),
		Symbol: symbol,
	}
}

// Entry is one captured dream fragment. Entries are immutable once created;
// the only lifecycle transitions are capture and confirmed deletion.
type Entry struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Text   string `json:"text"`
	Symbol string `json:"symbol"`
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s", e.Symbol, e.Text)
}

// Prepend puts e at the head of the collection. The collection is ordered
// newest first and entries are never appended.
func Prepend(entries []*Entry, e *Entry) []*Entry {
	out := make([]*Entry, 0, len(entries)+1)
	out = append(out, e)
	return append(out, entries...)
}

// RemoveByID drops the entry with the given id, reporting whether it was
// present.
func RemoveByID(entries []*Entry, id string) ([]*Entry, bool) {
	for i, e := range entries {
		if e != nil && e.ID == id {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}

// Buckets groups a collection by day key, preserving the collection's
// newest-first order within each bucket. The grouping is derived state and
// is rebuilt whenever the collection changes.
func Buckets(entries []*Entry) map[string][]*Entry {
	buckets := make(map[string][]*Entry)
	for _, e := range entries {
		if e == nil {
			continue
		}
		buckets[e.Date] = append(buckets[e.Date], e)
	}
	return buckets
}
