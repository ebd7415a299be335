package get

import (
	"context"
	"sort"

	"tableflip.dev/dreamlog/pkg/dates"
	"tableflip.dev/dreamlog/pkg/entry"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/printers"
	"tableflip.dev/dreamlog/pkg/store"
)

type Get struct {
	// On limits output to a single day key (YYYY-MM-DD). Empty lists all.
	On     string
	ShowID bool

	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	svc := &journal.Service{Persistence: g.Persistence}

	all, err := svc.Entries(ctx)
	if err != nil {
		return err
	}
	buckets := entry.Buckets(all)
	pp := printers.PrettyPrint{ShowID: g.ShowID}

	if g.On != "" {
		pp.TitleWithCount(dates.Format(g.On), len(buckets[g.On]))
		pp.Entries(buckets[g.On]...)
		return nil
	}

	if len(all) == 0 {
		pp.Title("Dream journal")
		pp.Entries()
		return nil
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// Newest day first, matching the collection order inside each bucket.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	for _, key := range keys {
		pp.TitleWithCount(dates.Format(key), len(buckets[key]))
		pp.Entries(buckets[key]...)
	}
	return nil
}
