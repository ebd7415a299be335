package glyph

import "testing"

func TestForAlias(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "moon", want: "🌙"},
		{in: "GHOST", want: "👻"},
		{in: " star ", want: "⭐"},
		{in: "🌊", want: "🌊"},
		{in: "", want: "🌙"},
		{in: "dragon", wantErr: true},
	}
	for _, tt := range tests {
		g, err := ForAlias(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForAlias(%q) expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForAlias(%q) returned %v", tt.in, err)
			continue
		}
		if g.Symbol != tt.want {
			t.Errorf("ForAlias(%q) = %q, want %q", tt.in, g.Symbol, tt.want)
		}
	}
}

func TestDefaultIsFirstInPalette(t *testing.T) {
	if Default().Alias != "moon" {
		t.Fatalf("default = %q", Default().Alias)
	}
	seen := map[string]bool{}
	for _, g := range DefaultSymbols() {
		if seen[g.Alias] {
			t.Fatalf("duplicate alias %q", g.Alias)
		}
		seen[g.Alias] = true
	}
}
