package ani

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable is a list of hue key-points, sorted by position in [0, 1].
type GradientTable []struct {
	Hue float64
	Pos float64
}

// At returns the colour at position p, interpolating hue between the two
// surrounding key-points, with chroma c and luminance l. An empty table is
// hue 0 everywhere.
func (g GradientTable) At(p, c, l float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Hcl(0, c, l)
	}
	for i := 0; i < len(g)-1; i++ {
		k1 := g[i]
		k2 := g[i+1]
		if k1.Pos <= p && p <= k2.Pos {
			span := k2.Pos - k1.Pos
			if span <= 0 {
				// Coincident key-points: a hard step to the later hue.
				return colorful.Hcl(k2.Hue, c, l)
			}
			h := (((p - k1.Pos) / span) * (k2.Hue - k1.Hue)) + k1.Hue
			return colorful.Hcl(h, c, l)
		}
	}

	// At or past the last key-point.
	return colorful.Hcl(g[len(g)-1].Hue, c, l)
}

// Sweep colours the progress of p through the gradient.
func (g GradientTable) Sweep(p Ani[float64], c, l float64) Ani[colorful.Color] {
	if len(g) == 0 {
		invalid("gradient")
	}
	return Select(p, func(v float64) colorful.Color {
		return g.At(v, c, l)
	})
}

// BlendHcl mixes a towards b by p in HCL space.
func BlendHcl(a, b Ani[colorful.Color], p Ani[float64]) Ani[colorful.Color] {
	return Combine3(a, b, p, func(x, y colorful.Color, p float64) colorful.Color {
		return x.BlendHcl(y, p).Clamped()
	})
}

// HclBlend is the blend function for Crossfade over colours.
func HclBlend(a, b colorful.Color, p float64) colorful.Color {
	return a.BlendHcl(b, p).Clamped()
}
