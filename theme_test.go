package cadence

import "testing"

// --- Hex parsing ---

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in         string
		r, g, b, a float64
	}{
		{"#3B82F6", 0x3B / 255.0, 0x82 / 255.0, 0xF6 / 255.0, 1},
		{"#000000", 0, 0, 0, 1},
		{"#FFFFFF", 1, 1, 1, 1},
		{"#ffffff", 1, 1, 1, 1},
		{"#F00", 1, 0, 0, 1},
		{"#FF000080", 1, 0, 0, 0x80 / 255.0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if err != nil {
				t.Fatalf("ParseHexColor(%q): %v", tt.in, err)
			}
			assertNear(t, "R", c.R, tt.r)
			assertNear(t, "G", c.G, tt.g)
			assertNear(t, "B", c.B, tt.b)
			assertNear(t, "A", c.A, tt.a)
		})
	}
}

func TestParseHexColorRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "3B82F6", "#12345", "#GGHHII", "#12345678AB"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q): want error", in)
		}
	}
}

// --- Resolution ---

func TestThemeColorLookup(t *testing.T) {
	th := DefaultTheme()
	primary, _ := ParseHexColor("#3B82F6")
	if got := th.Color("primary"); got != primary {
		t.Errorf("Color(primary) = %+v, want %+v", got, primary)
	}
	// Unknown names fall back to primary.
	if got := th.Color("no_such_color"); got != primary {
		t.Errorf("Color(no_such_color) = %+v, want primary", got)
	}
	// Recipe-specific fallbacks.
	accent, _ := ParseHexColor("#F59E0B")
	if got := th.ColorOr("no_such_color", "accent"); got != accent {
		t.Errorf("ColorOr fallback = %+v, want accent", got)
	}
}

func TestThemeColorHexPassthrough(t *testing.T) {
	th := DefaultTheme()
	red, _ := ParseHexColor("#FF0000")
	if got := th.Color("#FF0000"); got != red {
		t.Errorf("Color(#FF0000) = %+v, want parsed red", got)
	}
	// Malformed hex falls back rather than failing.
	if got := th.Color("#XYZ"); got != th.Color("primary") {
		t.Errorf("Color(#XYZ) = %+v, want primary", got)
	}
}

// --- Overrides ---

func TestThemeWithOverrides(t *testing.T) {
	base := DefaultTheme()
	th := base.WithOverrides(map[string]string{
		"primary": "#FF0000",
		"brand":   "accent",
		"bogus":   "not-a-color",
	})

	red, _ := ParseHexColor("#FF0000")
	if got := th.Color("primary"); got != red {
		t.Errorf("overridden primary = %+v, want red", got)
	}
	// Overrides may reference existing palette names.
	if got := th.Color("brand"); got != base.Color("accent") {
		t.Errorf("brand = %+v, want accent", got)
	}
	// Unparseable overrides are dropped; lookup falls back to primary,
	// which is now red.
	if got := th.Color("bogus"); got != red {
		t.Errorf("bogus = %+v, want fallback", got)
	}
	// The base theme is untouched.
	blue, _ := ParseHexColor("#3B82F6")
	if got := base.Color("primary"); got != blue {
		t.Errorf("base theme mutated: primary = %+v", got)
	}
}

func TestThemeWithOverridesEmpty(t *testing.T) {
	th := DefaultTheme()
	if th.WithOverrides(nil) != th {
		t.Error("WithOverrides(nil) should return the same theme")
	}
}

func TestThemeNames(t *testing.T) {
	names := DefaultTheme().Names()
	if len(names) != len(defaultPalette) {
		t.Fatalf("Names() = %d entries, want %d", len(names), len(defaultPalette))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
