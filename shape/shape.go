// Package shape describes visual primitives as bundles of animations and
// binds them to canvas shapes.
//
// A descriptor is immutable. Linking it to a canvas shape watches each of its
// animations and writes the values that changed onto the shape, once per
// pulse, until the link's lifetime dies.
package shape

import (
	"slices"

	"github.com/matt-g-everett/anitx/ani"
	"github.com/matt-g-everett/anitx/canvas"
	"github.com/matt-g-everett/anitx/lifetime"
)

// Default property values used when a descriptor leaves a stream unset.
var (
	DefaultStroke    = canvas.MustHex("#000000")
	DefaultFill      = canvas.MustHex("#000000")
	DefaultThickness = 1.0
	DefaultRadius    = 2.0
	DefaultFontSize  = 12.0
)

// A Desc can put itself on a canvas.
type Desc interface {
	// Instantiate creates the matching canvas shape for life and links the
	// descriptor to it.
	Instantiate(c *canvas.Canvas, pulse ani.Pulse, life lifetime.Lifetime)
}

func orConst[T any](a ani.Ani[T], fallback T) ani.Ani[T] {
	if a == nil {
		return ani.Constant(fallback)
	}
	return a
}

// PointDesc is a filled dot.
type PointDesc struct {
	Pos    ani.Ani[canvas.Point]
	Fill   ani.Ani[canvas.Color]
	Radius ani.Ani[float64]
}

func (d PointDesc) withDefaults() PointDesc {
	d.Pos = orConst(d.Pos, canvas.Point{})
	d.Fill = orConst(d.Fill, DefaultFill)
	d.Radius = orConst(d.Radius, DefaultRadius)
	return d
}

// Link drives e from the descriptor until life dies.
func (d PointDesc) Link(e *canvas.Ellipse, pulse ani.Pulse, life lifetime.Lifetime) {
	d = d.withDefaults()
	ani.Watch(d.Pos, life, pulse, func(p canvas.Point) { e.Center = p })
	ani.Watch(d.Fill, life, pulse, func(c canvas.Color) { e.Fill = c })
	ani.Watch(d.Radius, life, pulse, func(r float64) { e.RadiusX, e.RadiusY = r, r })
}

// Instantiate implements Desc.
func (d PointDesc) Instantiate(c *canvas.Canvas, pulse ani.Pulse, life lifetime.Lifetime) {
	d.Link(c.AddEllipse(life), pulse, life)
}

// LineSegmentDesc is a stroked segment. A positive Dashed gives the length of
// dashes and gaps.
type LineSegmentDesc struct {
	Pos       ani.Ani[canvas.Segment]
	Stroke    ani.Ani[canvas.Color]
	Thickness ani.Ani[float64]
	Dashed    ani.Ani[float64]
}

func (d LineSegmentDesc) withDefaults() LineSegmentDesc {
	d.Pos = orConst(d.Pos, canvas.Segment{})
	d.Stroke = orConst(d.Stroke, DefaultStroke)
	d.Thickness = orConst(d.Thickness, DefaultThickness)
	d.Dashed = orConst(d.Dashed, 0.0)
	return d
}

// Link drives l from the descriptor until life dies.
func (d LineSegmentDesc) Link(l *canvas.Line, pulse ani.Pulse, life lifetime.Lifetime) {
	d = d.withDefaults()
	ani.Watch(d.Pos, life, pulse, func(s canvas.Segment) { l.Segment = s })
	ani.Watch(d.Stroke, life, pulse, func(c canvas.Color) { l.Stroke = c })
	ani.Watch(d.Thickness, life, pulse, func(v float64) { l.Thickness = v })
	ani.Watch(d.Dashed, life, pulse, func(v float64) { l.Dash = v })
}

// Instantiate implements Desc.
func (d LineSegmentDesc) Instantiate(c *canvas.Canvas, pulse ani.Pulse, life lifetime.Lifetime) {
	d.Link(c.AddLine(life), pulse, life)
}

// RectDesc is an axis-aligned rectangle. Fill defaults to transparent.
type RectDesc struct {
	Pos       ani.Ani[canvas.Rect]
	Stroke    ani.Ani[canvas.Color]
	Fill      ani.Ani[canvas.Color]
	Thickness ani.Ani[float64]
	Dashed    ani.Ani[float64]
}

func (d RectDesc) withDefaults() RectDesc {
	d.Pos = orConst(d.Pos, canvas.Rect{})
	d.Stroke = orConst(d.Stroke, DefaultStroke)
	d.Fill = orConst(d.Fill, canvas.Transparent)
	d.Thickness = orConst(d.Thickness, DefaultThickness)
	d.Dashed = orConst(d.Dashed, 0.0)
	return d
}

// Link drives r from the descriptor until life dies.
func (d RectDesc) Link(r *canvas.Rectangle, pulse ani.Pulse, life lifetime.Lifetime) {
	d = d.withDefaults()
	ani.Watch(d.Pos, life, pulse, func(v canvas.Rect) { r.Rect = v })
	ani.Watch(d.Stroke, life, pulse, func(c canvas.Color) { r.Stroke = c })
	ani.Watch(d.Fill, life, pulse, func(c canvas.Color) { r.Fill = c })
	ani.Watch(d.Thickness, life, pulse, func(v float64) { r.Thickness = v })
	ani.Watch(d.Dashed, life, pulse, func(v float64) { r.Dash = v })
}

// Instantiate implements Desc.
func (d RectDesc) Instantiate(c *canvas.Canvas, pulse ani.Pulse, life lifetime.Lifetime) {
	d.Link(c.AddRectangle(life), pulse, life)
}

// PolygonDesc is a closed polygon. Fill defaults to transparent.
type PolygonDesc struct {
	Pos       ani.Ani[[]canvas.Point]
	Stroke    ani.Ani[canvas.Color]
	Fill      ani.Ani[canvas.Color]
	Thickness ani.Ani[float64]
	Dashed    ani.Ani[float64]
}

func (d PolygonDesc) withDefaults() PolygonDesc {
	d.Pos = orConst[[]canvas.Point](d.Pos, nil)
	d.Stroke = orConst(d.Stroke, DefaultStroke)
	d.Fill = orConst(d.Fill, canvas.Transparent)
	d.Thickness = orConst(d.Thickness, DefaultThickness)
	d.Dashed = orConst(d.Dashed, 0.0)
	return d
}

// Link drives p from the descriptor until life dies.
func (d PolygonDesc) Link(p *canvas.Polygon, pulse ani.Pulse, life lifetime.Lifetime) {
	d = d.withDefaults()
	ani.WatchFunc(d.Pos, life, pulse, func(pts []canvas.Point) {
		p.Points = slices.Clone(pts)
	}, slices.Equal[[]canvas.Point])
	ani.Watch(d.Stroke, life, pulse, func(c canvas.Color) { p.Stroke = c })
	ani.Watch(d.Fill, life, pulse, func(c canvas.Color) { p.Fill = c })
	ani.Watch(d.Thickness, life, pulse, func(v float64) { p.Thickness = v })
	ani.Watch(d.Dashed, life, pulse, func(v float64) { p.Dash = v })
}

// Instantiate implements Desc.
func (d PolygonDesc) Instantiate(c *canvas.Canvas, pulse ani.Pulse, life lifetime.Lifetime) {
	d.Link(c.AddPolygon(life), pulse, life)
}
