package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dreamlog/pkg/commands/options"
	"tableflip.dev/dreamlog/pkg/dates"
	"tableflip.dev/dreamlog/pkg/runner/get"
	"tableflip.dev/dreamlog/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List captured dreams, newest first",
		Example: `
dreamlog get
dreamlog get --on 2026-08-23
dreamlog get --show-id
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if oo.On == "" {
				return nil
			}
			if _, err := dates.ParseDayKey(oo.On); err != nil {
				return fmt.Errorf("invalid --on day %q, want YYYY-MM-DD", oo.On)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				On:          oo.On,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
