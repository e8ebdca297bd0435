package core

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a "#rrggbb" hex color.
// Drivers convert it to whatever their surface understands: lipgloss takes it
// verbatim, ebiten goes through RGBA.
type Color string

// ColorNone marks an uncolored screen cell.
const ColorNone Color = ""

// Palette is the fixed set of obstacle colors. It doubles as the list of ball
// colors offered by the color pickers.
var Palette = []Color{
	"#ff6f91",
	"#f9d423",
	"#6a89cc",
	"#38ada9",
	"#e17055",
	"#fdcb6e",
	"#00b894",
	"#fd79a8",
}

// ParseColor validates a hex color string and normalizes it to lower case.
// Accepts "#rrggbb" and "rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	// colorful also takes the short #rgb form and ignores trailing garbage.
	if len(s) != 7 {
		return ColorNone, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorNone, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(c.Hex()), nil
}

// RGBA returns the color with the given opacity in [0, 1], premultiplied the
// way ebiten expects. Invalid colors come back fully transparent.
func (c Color) RGBA(opacity float64) color.RGBA {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{}
	}
	a := ClampF(opacity, 0, 1)
	r, g, b := fade(col, a).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(255*a + 0.5)}
}

// String returns the hex form.
func (c Color) String() string {
	return string(c)
}

// Dim returns the color faded toward black by opacity, for surfaces without
// alpha blending. Invalid colors dim to ColorNone.
func (c Color) Dim(opacity float64) Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return ColorNone
	}
	return Color(fade(col, ClampF(opacity, 0, 1)).Hex())
}

func fade(c colorful.Color, opacity float64) colorful.Color {
	return c.BlendRgb(colorful.Color{}, 1-opacity)
}
