// Package store persists the dream collection as a single serialized
// snapshot under one well-known key. Every state change rewrites the whole
// snapshot; there is no log, no diff, and no partial update. Concurrent
// writers race and the last full-snapshot write wins.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dreamlog/pkg/entry"
)

// SnapshotKey is the single key the whole collection lives under.
const SnapshotKey = "dreams"

// Persistence is the repository contract for the dream collection. Load
// never fails from the caller's point of view: missing or unparsable state
// reads as an empty collection. Save replaces the full snapshot.
type Persistence interface {
	Load(ctx context.Context) []*entry.Entry
	Save(ctx context.Context, entries []*entry.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// flatTransform keeps the snapshot directly under the base path.
func flatTransform(string) []string {
	return []string{}
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) []*entry.Entry {
	val, err := p.d.Read(SnapshotKey)
	if err != nil {
		// Absent snapshot is the empty journal.
		return []*entry.Entry{}
	}
	var list []*entry.Entry
	if err := json.Unmarshal(val, &list); err != nil {
		// Unparsable state reads as empty rather than surfacing an error.
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", SnapshotKey, err)
		return []*entry.Entry{}
	}
	out := make([]*entry.Entry, 0, len(list))
	for _, e := range list {
		if e == nil || e.ID == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (p *persistence) Save(_ context.Context, entries []*entry.Entry) error {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return p.d.Write(SnapshotKey, data)
}
