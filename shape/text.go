package shape

import (
	"github.com/matt-g-everett/anitx/ani"
	"github.com/matt-g-everett/anitx/canvas"
	"github.com/matt-g-everett/anitx/lifetime"
)

// Measurer lays out a line of text.
type Measurer interface {
	Measure(s string, fontSize float64) (w, h float64)
}

// TextDesc is a line of text. Reference picks the point of the text that sits
// on Pos, as a fraction of its size: (0, 0) is the top-left corner and
// (0.5, 0.5) the centre.
type TextDesc struct {
	Text       ani.Ani[string]
	Pos        ani.Ani[canvas.Point]
	Reference  ani.Ani[canvas.Point]
	FontSize   ani.Ani[float64]
	Foreground ani.Ani[canvas.Color]
}

func (d TextDesc) withDefaults() TextDesc {
	d.Text = orConst(d.Text, "")
	d.Pos = orConst(d.Pos, canvas.Point{})
	d.Reference = orConst(d.Reference, canvas.Point{})
	d.FontSize = orConst(d.FontSize, DefaultFontSize)
	d.Foreground = orConst(d.Foreground, DefaultFill)
	return d
}

// Link drives t from the descriptor until life dies. The block's position
// depends on the measured text, so it is recomputed on every pulse.
func (d TextDesc) Link(t *canvas.TextBlock, m Measurer, pulse ani.Pulse, life lifetime.Lifetime) {
	d = d.withDefaults()
	topLeft := ani.Combine4(d.Text, d.Pos, d.Reference, d.FontSize,
		func(s string, pos, ref canvas.Point, size float64) canvas.Point {
			w, h := m.Measure(s, size)
			return pos.Sub(ref.Mul(canvas.Pt(w, h)))
		})

	ani.Watch(d.Text, life, pulse, func(s string) { t.Text = s })
	ani.Watch(d.FontSize, life, pulse, func(v float64) { t.FontSize = v })
	ani.Watch(d.Foreground, life, pulse, func(c canvas.Color) { t.Foreground = c })
	ani.Watch(topLeft, life, pulse, func(p canvas.Point) { t.Pos = p })
}

// Instantiate implements Desc.
func (d TextDesc) Instantiate(c *canvas.Canvas, pulse ani.Pulse, life lifetime.Lifetime) {
	d.Link(c.AddTextBlock(life), c, pulse, life)
}
