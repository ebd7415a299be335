package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dreamlog/pkg/calendar"
	"tableflip.dev/dreamlog/pkg/commands/options"
	runner "tableflip.dev/dreamlog/pkg/runner/calendar"
	"tableflip.dev/dreamlog/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	month := calendar.ThisMonth(time.Now())

	cmd := &cobra.Command{
		Use:     "calendar [month]",
		Aliases: []string{"cal"},
		Short:   "Show the month grid of captured dreams",
		Example: `
dreamlog calendar
dreamlog calendar "January 2026"
dreamlog calendar 2026-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			var err error
			month, err = parseMonth(strings.Join(args, " "))
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := runner.Calendar{
				Month:       month,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func parseMonth(raw string) (calendar.Month, error) {
	for _, layout := range []string{"January 2006", "2006-01"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return calendar.Month{Year: t.Year(), Month0: int(t.Month()) - 1}, nil
		}
	}
	return calendar.Month{}, fmt.Errorf("unrecognized month %q, want \"January 2006\" or YYYY-MM", raw)
}
