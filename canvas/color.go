package canvas

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a colour with opacity. A is in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// Transparent paints nothing.
var Transparent = Color{}

// Opaque wraps c at full opacity.
func Opaque(c colorful.Color) Color {
	return Color{Color: c, A: 1}
}

// WithAlpha returns c with opacity a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Visible reports whether painting with c changes anything.
func (c Color) Visible() bool {
	return c.A > 0
}

// Hex parses "#rrggbb" into an opaque colour.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return Opaque(c), nil
}

// MustHex is Hex for literals known to be valid.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) rgba() (r, g, b, a float64) {
	k := c.Clamped()
	return k.R, k.G, k.B, c.A
}
