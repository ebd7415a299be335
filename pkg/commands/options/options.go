// Package options holds the flag structs shared by the dreamlog commands.
package options

import (
	"github.com/spf13/cobra"
)

// SymbolOptions selects which palette symbol a capture carries.
type SymbolOptions struct {
	Symbol string
}

func AddSymbolArgs(cmd *cobra.Command, so *SymbolOptions) {
	cmd.Flags().StringVarP(&so.Symbol, "symbol", "s", "moon",
		"Symbol to attach, by alias (moon, star, ghost, …) or literal glyph.")
}

// OnOptions limits a listing to a single day.
type OnOptions struct {
	On string
}

func AddOnArgs(cmd *cobra.Command, oo *OnOptions) {
	cmd.Flags().StringVar(&oo.On, "on", "", "Limit to a single day (YYYY-MM-DD).")
}

// IDOptions toggles entry id display.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVar(&io.ShowID, "show-id", false, "Show entry ids.")
}

// ConfirmOptions skips interactive confirmation.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, co *ConfirmOptions) {
	cmd.Flags().BoolVarP(&co.Yes, "yes", "y", false, "Skip the confirmation prompt.")
}
