package add

import (
	"context"
	"errors"

	"tableflip.dev/dreamlog/pkg/dates"
	"tableflip.dev/dreamlog/pkg/entry"
	"tableflip.dev/dreamlog/pkg/glyph"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/printers"
	"tableflip.dev/dreamlog/pkg/store"
)

type Add struct {
	Text   string
	Symbol glyph.Glyph
	ShowID bool

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	svc := &journal.Service{Persistence: a.Persistence}

	e, err := svc.Add(ctx, a.Text, a.Symbol.Symbol)
	if errors.Is(err, journal.ErrEmptyText) {
		// Whitespace-only drafts are dropped without an error.
		return nil
	}
	if err != nil {
		return err
	}

	all, err := svc.Entries(ctx)
	if err != nil {
		return err
	}
	bucket := entry.Buckets(all)[e.Date]

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.TitleWithCount(dates.Format(e.Date), len(bucket))
	pp.Entries(bucket...)
	return nil
}
