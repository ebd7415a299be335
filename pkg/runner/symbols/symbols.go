// Package symbols provides CLI helpers to display the symbol palette.
package symbols

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dreamlog/pkg/glyph"
)

// Symbols prints the palette legend describing each dream symbol.
type Symbols struct{}

// Do renders the palette to stdout.
func (s *Symbols) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Alias"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultSymbols() {
		tbl.AddRow(g.Symbol, g.Alias, g.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}
