package cadence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// defaultPalette is the built-in dark palette. Keys are the color names deck
// files refer to.
var defaultPalette = map[string]string{
	"primary":    "#3B82F6",
	"secondary":  "#10B981",
	"accent":     "#F59E0B",
	"highlight":  "#EC4899",
	"purple":     "#A78BFA",
	"cyan":       "#06B6D4",
	"text":       "#F0F0F0",
	"dim":        "#6B7280",
	"bg":         "#0a0a0a",
	"bg_light":   "#1a1a1a",
	"warning":    "#EF4444",
	"success":    "#10B981",
	"vector":     "#FF6B9D",
	"grid":       "#303030",
	"axis":       "#60A5FA",
	"point":      "#34D399",
	"projection": "#6B7280",
	"neuron":     "#4ECDC4",
	"active":     "#FF6B6B",
	"inactive":   "#95A5A6",
	"correct":    "#2ECC71",
	"wrong":      "#E74C3C",
	"connection": "#BDC3C7",
	"error":      "#EF4444",
}

// Theme maps color names to colors. A Theme is immutable after construction
// and safe to share across goroutines.
type Theme struct {
	colors map[string]Color
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	t := &Theme{colors: make(map[string]Color, len(defaultPalette))}
	for name, hex := range defaultPalette {
		c, err := ParseHexColor(hex)
		if err != nil {
			panic("cadence: bad built-in color " + name + ": " + err.Error())
		}
		t.colors[name] = c
	}
	return t
}

// WithOverrides returns a copy of the theme with the given name remappings
// applied. Override values may be hex strings or names of existing theme
// colors. Unparseable values are skipped with a debug warning.
func (t *Theme) WithOverrides(overrides map[string]string) *Theme {
	if len(overrides) == 0 {
		return t
	}
	nt := &Theme{colors: make(map[string]Color, len(t.colors)+len(overrides))}
	for name, c := range t.colors {
		nt.colors[name] = c
	}
	for name, val := range overrides {
		if c, ok := t.colors[val]; ok {
			nt.colors[name] = c
			continue
		}
		c, err := ParseHexColor(val)
		if err != nil {
			debugf("theme override %q: %v", name, err)
			continue
		}
		nt.colors[name] = c
	}
	return nt
}

// ColorOr resolves a color reference. Hex strings parse directly, names look
// up the palette, anything else resolves to the named fallback. The fallback
// must be a palette name.
func (t *Theme) ColorOr(ref, fallback string) Color {
	if strings.HasPrefix(ref, "#") {
		if c, err := ParseHexColor(ref); err == nil {
			return c
		}
	}
	if c, ok := t.colors[ref]; ok {
		return c
	}
	return t.colors[fallback]
}

// Color resolves a color reference, falling back to primary.
func (t *Theme) Color(ref string) Color {
	return t.ColorOr(ref, "primary")
}

// Names returns the palette's color names, sorted.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.colors))
	for name := range t.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseHexColor parses #RGB, #RRGGBB and #RRGGBBAA color strings.
func ParseHexColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("cadence: hex color %q missing #", s)
	}
	hex := s[1:]
	var r, g, b, a uint64
	var err error
	parse := func(part string) uint64 {
		if err != nil {
			return 0
		}
		var v uint64
		v, err = strconv.ParseUint(part, 16, 8)
		return v
	}
	a = 255
	switch len(hex) {
	case 3:
		r = parse(strings.Repeat(hex[0:1], 2))
		g = parse(strings.Repeat(hex[1:2], 2))
		b = parse(strings.Repeat(hex[2:3], 2))
	case 6:
		r, g, b = parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])
	case 8:
		r, g, b, a = parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6]), parse(hex[6:8])
	default:
		return Color{}, fmt.Errorf("cadence: hex color %q has length %d, want 3, 6 or 8", s, len(hex))
	}
	if err != nil {
		return Color{}, fmt.Errorf("cadence: hex color %q: %w", s, err)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}
