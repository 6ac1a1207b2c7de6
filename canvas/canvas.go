// Package canvas is a headless retained-mode drawing surface. Shapes live on
// the canvas for as long as their lifetimes do and every Render composites
// the live ones, in the order they were added, with the gg software
// rasterizer.
package canvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/matt-g-everett/anitx/lifetime"
)

// Canvas owns the shapes of one scene.
type Canvas struct {
	width      int
	height     int
	Background Color
	fonts      *Fonts
	shapes     *lifetime.PerishableCollection[Shape]
}

// New creates an empty canvas. fonts may be nil, in which case text is laid
// out by estimate and not drawn.
func New(width, height int, background Color, fonts *Fonts) *Canvas {
	c := new(Canvas)
	c.width = width
	c.height = height
	c.Background = background
	c.fonts = fonts
	c.shapes = lifetime.NewPerishableCollection[Shape]()
	return c
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Measure returns the laid out size of a line of text.
func (c *Canvas) Measure(s string, fontSize float64) (w, h float64) {
	return c.fonts.Measure(s, fontSize)
}

// Add places a shape on the canvas until life dies.
func (c *Canvas) Add(s Shape, life lifetime.Lifetime) {
	c.shapes.Add(s, life)
}

// AddEllipse creates an ellipse that lives for life.
func (c *Canvas) AddEllipse(life lifetime.Lifetime) *Ellipse {
	e := new(Ellipse)
	c.Add(e, life)
	return e
}

// AddLine creates a line that lives for life.
func (c *Canvas) AddLine(life lifetime.Lifetime) *Line {
	l := new(Line)
	c.Add(l, life)
	return l
}

// AddRectangle creates a rectangle that lives for life.
func (c *Canvas) AddRectangle(life lifetime.Lifetime) *Rectangle {
	r := new(Rectangle)
	c.Add(r, life)
	return r
}

// AddPolygon creates a polygon that lives for life.
func (c *Canvas) AddPolygon(life lifetime.Lifetime) *Polygon {
	p := new(Polygon)
	c.Add(p, life)
	return p
}

// AddTextBlock creates a text block that lives for life.
func (c *Canvas) AddTextBlock(life lifetime.Lifetime) *TextBlock {
	t := new(TextBlock)
	c.Add(t, life)
	return t
}

// Shapes returns the live shapes in draw order.
func (c *Canvas) Shapes() []Shape {
	items := c.shapes.CurrentItems()
	shapes := make([]Shape, len(items))
	for i, item := range items {
		shapes[i] = item.Value
	}
	return shapes
}

// Render draws the background and every live shape. A shape that fails to
// draw is skipped and reported in the returned error, alongside the image.
func (c *Canvas) Render() (image.Image, error) {
	dc := gg.NewContext(c.width, c.height)
	defer dc.Close()

	r, g, b, a := c.Background.rgba()
	dc.ClearWithColor(gg.RGBA{R: r, G: g, B: b, A: a})

	var errs []error
	for i, s := range c.Shapes() {
		if err := s.draw(dc, c.fonts); err != nil {
			errs = append(errs, fmt.Errorf("shape %d (%T): %w", i, s, err))
		}
	}
	return dc.Image(), errors.Join(errs...)
}
