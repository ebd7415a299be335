package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dreamlog/pkg/commands/options"
	"tableflip.dev/dreamlog/pkg/glyph"
	"tableflip.dev/dreamlog/pkg/runner/add"
	"tableflip.dev/dreamlog/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.SymbolOptions{}
	io := &options.IDOptions{}

	var text string

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Capture a dream",
		Example: `
dreamlog add I was riding a pink bike
dreamlog add --symbol ghost chased through an endless library
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires dream text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := glyph.ForAlias(so.Symbol)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Text:        text,
				Symbol:      g,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSymbolArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
