// Package scene groups the descriptors and per-frame actions that make up
// one animation and puts them on a canvas.
package scene

import (
	"github.com/matt-g-everett/anitx/ani"
	"github.com/matt-g-everett/anitx/canvas"
	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/matt-g-everett/anitx/shape"
)

// Animation is the content of one scene. Content is added with the lifetime
// it should be visible for; the scene's own lifetime bounds all of it.
type Animation struct {
	Points      *lifetime.PerishableCollection[shape.PointDesc]
	Lines       *lifetime.PerishableCollection[shape.LineSegmentDesc]
	Rects       *lifetime.PerishableCollection[shape.RectDesc]
	Polygons    *lifetime.PerishableCollection[shape.PolygonDesc]
	Texts       *lifetime.PerishableCollection[shape.TextDesc]
	StepActions *lifetime.PerishableCollection[func(ani.Step)]
}

// NewAnimation creates an empty Animation.
func NewAnimation() *Animation {
	a := new(Animation)
	a.Points = lifetime.NewPerishableCollection[shape.PointDesc]()
	a.Lines = lifetime.NewPerishableCollection[shape.LineSegmentDesc]()
	a.Rects = lifetime.NewPerishableCollection[shape.RectDesc]()
	a.Polygons = lifetime.NewPerishableCollection[shape.PolygonDesc]()
	a.Texts = lifetime.NewPerishableCollection[shape.TextDesc]()
	a.StepActions = lifetime.NewPerishableCollection[func(ani.Step)]()
	return a
}

// Add routes a descriptor to the matching collection.
func (a *Animation) Add(d shape.Desc, life lifetime.Lifetime) {
	switch d := d.(type) {
	case shape.PointDesc:
		a.Points.Add(d, life)
	case shape.LineSegmentDesc:
		a.Lines.Add(d, life)
	case shape.RectDesc:
		a.Rects.Add(d, life)
	case shape.PolygonDesc:
		a.Polygons.Add(d, life)
	case shape.TextDesc:
		a.Texts.Add(d, life)
	default:
		panic("scene: unsupported descriptor type")
	}
}

// OnStep runs action once per frame until life dies.
func (a *Animation) OnStep(action func(ani.Step), life lifetime.Lifetime) {
	if action == nil {
		panic("scene: nil step action")
	}
	a.StepActions.Add(action, life)
}

// Link shows the animation on c until life dies. Every descriptor, present or
// added later, gets its own canvas shape for as long as both its lifetime and
// life last.
func (a *Animation) Link(c *canvas.Canvas, pulse ani.Pulse, life lifetime.Lifetime) {
	linkAll(a.Points, c, pulse, life)
	linkAll(a.Lines, c, pulse, life)
	linkAll(a.Rects, c, pulse, life)
	linkAll(a.Polygons, c, pulse, life)
	linkAll(a.Texts, c, pulse, life)
}

func linkAll[D shape.Desc](descs *lifetime.PerishableCollection[D], c *canvas.Canvas, pulse ani.Pulse, life lifetime.Lifetime) {
	descs.CurrentAndFutureItems(life, func(item lifetime.Perishable[D]) {
		item.Value.Instantiate(c, pulse, lifetime.Min(life, item.Lifetime))
	})
}
