// Package journal provides the high-level operations shared by the CLI and
// the TUI. Views do not share a live collection; each holds its own copy and
// every operation here goes load → mutate → full snapshot save.
package journal

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/dreamlog/pkg/entry"
	"tableflip.dev/dreamlog/pkg/store"
)

var (
	// ErrEmptyText rejects whitespace-only drafts. Views treat it as a
	// silent no-op: no entry is created and nothing is written.
	ErrEmptyText = errors.New("journal: empty text")

	// ErrNotFound reports a delete for an id that is not in the collection.
	ErrNotFound = errors.New("journal: entry not found")
)

// Service wraps persistence so UIs and the CLI share logic.
type Service struct {
	Persistence store.Persistence
}

// Entries returns the current collection, newest first.
func (s *Service) Entries(ctx context.Context) ([]*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	return s.Persistence.Load(ctx), nil
}

// Add captures a new dream: trims the text, prepends a fresh entry, and
// persists the full collection. Whitespace-only text returns ErrEmptyText
// without touching storage.
func (s *Service) Add(ctx context.Context, text, symbol string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	all := s.Persistence.Load(ctx)
	e := entry.New(text, symbol)
	all = entry.Prepend(all, e)
	if err := s.Persistence.Save(ctx, all); err != nil {
		return nil, err
	}
	return e, nil
}

// Remove deletes the entry with the given id and persists the result. The
// caller is responsible for having confirmed the deletion with the user.
func (s *Service) Remove(ctx context.Context, id string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	all := s.Persistence.Load(ctx)
	var removed *entry.Entry
	for _, e := range all {
		if e.ID == id {
			removed = e
			break
		}
	}
	if removed == nil {
		return nil, ErrNotFound
	}
	all, _ = entry.RemoveByID(all, id)
	if err := s.Persistence.Save(ctx, all); err != nil {
		return nil, err
	}
	return removed, nil
}

// Buckets returns the collection grouped by day key.
func (s *Service) Buckets(ctx context.Context) (map[string][]*entry.Entry, error) {
	all, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return entry.Buckets(all), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
