package remove

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/dreamlog/pkg/dates"
	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/store"
)

type Remove struct {
	ID string
	// Confirmed skips the interactive prompt (--yes).
	Confirmed bool

	// In defaults to stdin; tests substitute a reader.
	In io.Reader

	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	svc := &journal.Service{Persistence: r.Persistence}

	if !r.Confirmed {
		ok, err := r.confirm(ctx, svc)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("aborted")
			return nil
		}
	}

	removed, err := svc.Remove(ctx, r.ID)
	if err != nil {
		return err
	}

	f := color.New(color.Faint)
	_, _ = f.Printf("deleted %s %s (%s)\n", removed.Symbol, removed.Text, dates.Format(removed.Date))
	return nil
}

// confirm shows the entry about to be deleted and asks for a y/N answer.
// There is no undo, so deletion is always gated on an explicit yes.
func (r *Remove) confirm(ctx context.Context, svc *journal.Service) (bool, error) {
	all, err := svc.Entries(ctx)
	if err != nil {
		return false, err
	}
	for _, e := range all {
		if e.ID == r.ID {
			fmt.Printf("delete %s %s (%s)? [y/N] ", e.Symbol, e.Text, dates.Format(e.Date))
			in := r.In
			if in == nil {
				in = os.Stdin
			}
			answer, err := bufio.NewReader(in).ReadString('\n')
			if err != nil && answer == "" {
				return false, nil
			}
			answer = strings.ToLower(strings.TrimSpace(answer))
			return answer == "y" || answer == "yes", nil
		}
	}
	return false, journal.ErrNotFound
}
