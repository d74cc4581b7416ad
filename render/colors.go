package render

import (
	"strings"

	"golang.org/x/image/colornames"
)

// An RGB color with components in [0, 1].
type Color [3]float32

// Colors the SVG palette lacks but scene files conventionally use.
var extraColors = map[string]Color{
	"peacock": {0.2, 0.631, 0.788},
	"banana":  {0.890, 0.812, 0.341},
	"mint":    {0.737, 0.988, 0.788},
}

// Resolve a color by its conventional name, e.g. "Tomato" or "Wheat".
// Lookup is case-insensitive.
func NamedColor(name string) (Color, bool) {
	key := strings.ToLower(name)
	if c, ok := extraColors[key]; ok {
		return c, true
	}
	if rgba, ok := colornames.Map[key]; ok {
		return Color{
			float32(rgba.R) / 255.0,
			float32(rgba.G) / 255.0,
			float32(rgba.B) / 255.0,
		}, true
	}
	return Color{}, false
}

// Resolve a color by name, falling back to the given color when the name is
// not known.
func NamedColorOr(name string, fallback Color) Color {
	if c, ok := NamedColor(name); ok {
		return c
	}
	logger.Warningf("unknown color name %q", name)
	return fallback
}
