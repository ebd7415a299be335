package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dreamlog/pkg/runner/symbols"
)

func addSymbols(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "Show the dream symbol palette",
		Example: `
dreamlog symbols
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := symbols.Symbols{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
