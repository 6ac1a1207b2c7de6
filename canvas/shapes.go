package canvas

import (
	"errors"

	"github.com/gogpu/gg"
)

// Shape is a retained-mode primitive. Its exported fields may be changed
// between frames and the next render picks them up.
type Shape interface {
	draw(dc *gg.Context, fonts *Fonts) error
}

// Ellipse is a filled and stroked ellipse.
type Ellipse struct {
	Center          Point
	RadiusX         float64
	RadiusY         float64
	Fill            Color
	Stroke          Color
	StrokeThickness float64
}

// Line is a stroked line segment.
type Line struct {
	Segment
	Stroke    Color
	Thickness float64
	Dash      float64
}

// Rectangle is a filled and stroked rectangle.
type Rectangle struct {
	Rect
	Fill      Color
	Stroke    Color
	Thickness float64
	Dash      float64
}

// Polygon is a closed, filled and stroked polygon.
type Polygon struct {
	Points    []Point
	Fill      Color
	Stroke    Color
	Thickness float64
	Dash      float64
}

// TextBlock is a single line of text positioned by its top-left corner.
type TextBlock struct {
	Text       string
	Pos        Point
	FontSize   float64
	Foreground Color
}

func paint(dc *gg.Context, fill, stroke Color, thickness, dash float64) error {
	var errs []error
	if fill.Visible() {
		dc.SetRGBA(fill.rgba())
		errs = append(errs, dc.FillPreserve())
	}
	if stroke.Visible() && thickness > 0 {
		dc.SetRGBA(stroke.rgba())
		dc.SetLineWidth(thickness)
		if dash > 0 {
			dc.SetDash(dash, dash)
		} else {
			dc.ClearDash()
		}
		errs = append(errs, dc.StrokePreserve())
	}
	dc.ClearPath()
	return errors.Join(errs...)
}

func (e *Ellipse) draw(dc *gg.Context, _ *Fonts) error {
	if e.RadiusX <= 0 || e.RadiusY <= 0 {
		return nil
	}
	dc.DrawEllipse(e.Center.X, e.Center.Y, e.RadiusX, e.RadiusY)
	return paint(dc, e.Fill, e.Stroke, e.StrokeThickness, 0)
}

func (l *Line) draw(dc *gg.Context, _ *Fonts) error {
	dc.DrawLine(l.Start.X, l.Start.Y, l.End.X, l.End.Y)
	return paint(dc, Transparent, l.Stroke, l.Thickness, l.Dash)
}

func (r *Rectangle) draw(dc *gg.Context, _ *Fonts) error {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	return paint(dc, r.Fill, r.Stroke, r.Thickness, r.Dash)
}

func (p *Polygon) draw(dc *gg.Context, _ *Fonts) error {
	if len(p.Points) < 2 {
		return nil
	}
	dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	return paint(dc, p.Fill, p.Stroke, p.Thickness, p.Dash)
}

func (t *TextBlock) draw(dc *gg.Context, fonts *Fonts) error {
	if fonts == nil || t.Text == "" || t.FontSize <= 0 || !t.Foreground.Visible() {
		return nil
	}
	face := fonts.Face(t.FontSize)
	dc.SetFont(face)
	dc.SetRGBA(t.Foreground.rgba())
	dc.DrawString(t.Text, t.Pos.X, t.Pos.Y+face.Metrics().Ascent)
	return nil
}
