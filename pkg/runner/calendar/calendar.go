package calendar

import (
	"context"
	"time"

	"tableflip.dev/dreamlog/pkg/calendar"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/printers"
	"tableflip.dev/dreamlog/pkg/store"
)

type Calendar struct {
	Month  calendar.Month
	ShowID bool

	Persistence store.Persistence
}

func (c *Calendar) Do(ctx context.Context) error {
	svc := &journal.Service{Persistence: c.Persistence}

	buckets, err := svc.Buckets(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: c.ShowID}
	pp.NewLine()
	pp.Month(c.Month, buckets, time.Now())
	return nil
}
