package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dreamlog/pkg/journal"
	"tableflip.dev/dreamlog/pkg/store"
	"tableflip.dev/dreamlog/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive capture and calendar views",
		Example: `
dreamlog ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := &journal.Service{Persistence: p}
			return app.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
