package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/dreamlog/pkg/entry"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	want := []*entry.Entry{
		{ID: "b", Date: "2026-08-23", Text: "falling", Symbol: "👻"},
		{ID: "a", Date: "2026-08-22", Text: "flying", Symbol: "⭐"},
	}
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Load(ctx)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if *got[i] != *want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadMissingSnapshotIsEmpty(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if got := p.Load(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d entries", len(got))
	}
}

func TestLoadUnparsableSnapshotIsEmpty(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, SnapshotKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt snapshot: %v", err)
	}

	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if got := p.Load(context.Background()); len(got) != 0 {
		t.Fatalf("expected fail-open empty collection, got %d entries", len(got))
	}
}

func TestSaveReplacesFullSnapshot(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	if err := p.Save(ctx, []*entry.Entry{{ID: "a", Date: "2026-08-22", Text: "x", Symbol: "🌙"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.Save(ctx, []*entry.Entry{}); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	if got := p.Load(ctx); len(got) != 0 {
		t.Fatalf("snapshot should have been replaced, got %d entries", len(got))
	}
}
