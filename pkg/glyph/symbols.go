// Package glyph defines the dream symbol palette.
package glyph

import (
	"fmt"
	"strings"
)

// Glyph is one symbol from the palette: the printable symbol, a CLI-friendly
// alias, and what it marks a dream as.
type Glyph struct {
	Alias   string
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

// Placeholder is shown for calendar days that have no entries.
const Placeholder = "·"

// DefaultSymbols returns the palette in display order.
func DefaultSymbols() []Glyph {
	return []Glyph{{
		Alias:   "moon",
		Symbol:  "🌙",
		Meaning: "ordinary dream",
	}, {
		Alias:   "star",
		Symbol:  "⭐",
		Meaning: "lucid dream",
	}, {
		Alias:   "ghost",
		Symbol:  "👻",
		Meaning: "nightmare",
	}, {
		Alias:   "wave",
		Symbol:  "🌊",
		Meaning: "water dream",
	}, {
		Alias:   "fire",
		Symbol:  "🔥",
		Meaning: "vivid, intense",
	}, {
		Alias:   "butterfly",
		Symbol:  "🦋",
		Meaning: "transformation",
	}, {
		Alias:   "spiral",
		Symbol:  "🌀",
		Meaning: "recurring dream",
	}, {
		Alias:   "cloud",
		Symbol:  "☁️",
		Meaning: "hazy, fragmentary",
	}}
}

// Default is the symbol used when none is chosen.
func Default() Glyph {
	return DefaultSymbols()[0]
}

// ForAlias resolves an alias or a literal symbol to a palette glyph.
func ForAlias(alias string) (Glyph, error) {
	needle := strings.TrimSpace(alias)
	if needle == "" {
		return Default(), nil
	}
	for _, g := range DefaultSymbols() {
		if strings.EqualFold(g.Alias, needle) || g.Symbol == needle {
			return g, nil
		}
	}
	return Glyph{}, fmt.Errorf("glyph: unknown symbol %q", alias)
}
