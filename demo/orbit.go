// Package demo contains a small example scene.
package demo

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/anitx/ani"
	"github.com/matt-g-everett/anitx/canvas"
	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/matt-g-everett/anitx/scene"
	"github.com/matt-g-everett/anitx/shape"
	"github.com/matt-g-everett/anitx/util"
)

// Rainbow is the hue gradient the planets cycle through.
var Rainbow = ani.GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquoise
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

const (
	orbitPeriod = 4 * time.Second
	trailEvery  = 250 * time.Millisecond
	trailLife   = 2 * time.Second
)

func opaque(c colorful.Color) canvas.Color {
	return canvas.Opaque(c)
}

// Orbit builds a planet circling the centre of a width x height canvas,
// leaving a fading trail of dots, with a spinning hexagon and a lap counter.
func Orbit(width, height int, fontSize float64, life lifetime.Lifetime) *scene.Animation {
	a := scene.NewAnimation()
	center := canvas.Pt(float64(width)/2, float64(height)/2)
	radius := math.Min(float64(width), float64(height)) * 0.35

	angle := ani.Angle(orbitPeriod)
	planet := ani.Select(angle, func(theta float64) canvas.Point {
		return center.Polar(radius, theta)
	})
	hue := Rainbow.Sweep(ani.Periodic(3*orbitPeriod), 1.0, 0.6)

	a.Add(shape.LineSegmentDesc{
		Pos: ani.Select(planet, func(p canvas.Point) canvas.Segment {
			return canvas.Segment{Start: center, End: p}
		}),
		Stroke:    ani.Constant(canvas.MustHex("#808080")),
		Thickness: ani.Constant(1.0),
		Dashed:    ani.Constant(4.0),
	}, life)

	a.Add(shape.PolygonDesc{
		Pos: ani.Select(ani.Angle(3*orbitPeriod), func(theta float64) []canvas.Point {
			pts := make([]canvas.Point, 6)
			for i := range pts {
				pts[i] = center.Polar(radius*0.25, theta+float64(i)*math.Pi/3)
			}
			return pts
		}),
		Fill: ani.Crossfade(
			ani.Constant(canvas.MustHex("#202040")),
			ani.Select(hue, opaque),
			0, 2*time.Second,
			func(x, y canvas.Color, p float64) canvas.Color {
				return opaque(ani.HclBlend(x.Color, y.Color, p))
			}),
		Stroke:    ani.Constant(canvas.MustHex("#000000")),
		Thickness: ani.Constant(2.0),
	}, life)

	a.Add(shape.PointDesc{
		Pos:    planet,
		Fill:   ani.Select(hue, opaque),
		Radius: ani.Add(ani.Constant(8.0), ani.Scale(ani.Lut(util.GenerateLut(24), time.Second), 4.0)),
	}, life)

	// Lap count is simulation state advanced by the step action.
	laps := 0
	a.Add(shape.TextDesc{
		Text: ani.New(func(t time.Duration) string {
			return fmt.Sprintf("t=%.1fs laps=%d", t.Seconds(), laps)
		}),
		Pos:       ani.Constant(canvas.Pt(center.X, 16)),
		Reference: ani.Constant(canvas.Pt(0.5, 0)),
		FontSize:  ani.Constant(fontSize),
	}, life)

	var sinceTrail time.Duration
	a.OnStep(func(step ani.Step) {
		laps = int(step.Next() / orbitPeriod)

		sinceTrail += step.Delta
		if sinceTrail < trailEvery {
			return
		}
		sinceTrail -= trailEvery
		addTrailDot(a, step.Next(), planet.ValueAt(step.Next()), life)
	}, life)

	return a
}

// addTrailDot drops a dot that fades out over trailLife and is then removed.
func addTrailDot(a *scene.Animation, born time.Duration, at canvas.Point, life lifetime.Lifetime) {
	dot := lifetime.Dependent(life)
	fade := ani.Tween(1, 0, born, trailLife, nil)
	a.Add(shape.PointDesc{
		Pos: ani.Constant(at),
		Fill: ani.Select(fade, func(alpha float64) canvas.Color {
			return canvas.MustHex("#4060c0").WithAlpha(alpha)
		}),
		Radius: ani.Constant(3.0),
	}, dot.Lifetime())

	a.OnStep(func(step ani.Step) {
		if step.Next() >= born+trailLife {
			dot.EndLifetime()
		}
	}, dot.Lifetime())
}
