package ani

import (
	"math"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	p := Progress(time.Second, 2*time.Second)
	assert.Equal(t, 0.0, p.ValueAt(0))
	assert.Equal(t, 0.5, p.ValueAt(2*time.Second))
	assert.Equal(t, 1.0, p.ValueAt(10*time.Second))

	jump := Progress(time.Second, 0)
	assert.Equal(t, 0.0, jump.ValueAt(999*time.Millisecond))
	assert.Equal(t, 1.0, jump.ValueAt(time.Second))
}

func TestTween(t *testing.T) {
	linear := Tween(0, 10, time.Second, 2*time.Second, nil)
	assert.Equal(t, 0.0, linear.ValueAt(0))
	assert.Equal(t, 5.0, linear.ValueAt(2*time.Second))
	assert.Equal(t, 10.0, linear.ValueAt(time.Minute))

	smooth := SmoothTween(0, 10, 0, 2*time.Second)
	assert.InDelta(t, 5.0, smooth.ValueAt(time.Second), 1e-9)
	assert.Less(t, smooth.ValueAt(200*time.Millisecond), linear.ValueAt(time.Second+200*time.Millisecond))
}

func TestEased(t *testing.T) {
	square := Eased(Constant(0.5), func(v float64) float64 { return v * v })
	assert.Equal(t, 0.25, square.ValueAt(0))
}

func TestPeriodicAndAngle(t *testing.T) {
	p := Periodic(time.Second)
	assert.Equal(t, 0.0, p.ValueAt(0))
	assert.Equal(t, 0.5, p.ValueAt(1500*time.Millisecond))
	assert.InDelta(t, 3.14159265, Angle(time.Second).ValueAt(500*time.Millisecond), 1e-6)
}

func TestLut(t *testing.T) {
	l := Lut([]float64{1, 2, 3, 4}, 4*time.Second)
	assert.Equal(t, 1.0, l.ValueAt(0))
	assert.Equal(t, 2.0, l.ValueAt(time.Second))
	assert.Equal(t, 4.0, l.ValueAt(3500*time.Millisecond))
	assert.Equal(t, 1.0, l.ValueAt(4*time.Second))
}

func TestCrossfade(t *testing.T) {
	lerp := func(a, b, p float64) float64 { return a + (b-a)*p }
	c := Crossfade(Constant(0.0), Constant(10.0), time.Second, 2*time.Second, lerp)
	assert.Equal(t, 0.0, c.ValueAt(0))
	assert.Equal(t, 5.0, c.ValueAt(2*time.Second))
	assert.Equal(t, 10.0, c.ValueAt(3*time.Second))
	assert.Equal(t, 10.0, c.ValueAt(time.Hour))
}

func TestGradientTable(t *testing.T) {
	g := GradientTable{
		{0.0, 0.0},
		{360.0, 1.0},
	}
	assert.Equal(t, colorful.Hcl(180, 1, 0.5), g.At(0.5, 1, 0.5))
	assert.Equal(t, colorful.Hcl(360, 1, 0.5), g.At(2, 1, 0.5))

	sweep := g.Sweep(Constant(0.5), 1, 0.5)
	assert.Equal(t, colorful.Hcl(180, 1, 0.5), sweep.ValueAt(0))
}

func TestGradientTableDegenerate(t *testing.T) {
	var empty GradientTable
	assert.Equal(t, colorful.Hcl(0, 1, 0.5), empty.At(0.3, 1, 0.5))

	step := GradientTable{
		{0.0, 0.0},
		{90.0, 0.0},
		{360.0, 1.0},
	}
	c := step.At(0, 1, 0.5)
	assert.False(t, math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B))
	assert.Equal(t, colorful.Hcl(90, 1, 0.5), c)
	assert.Equal(t, colorful.Hcl(225, 1, 0.5), step.At(0.5, 1, 0.5))
}

func TestBlendHcl(t *testing.T) {
	red := Constant(colorful.Color{R: 1})
	blue := Constant(colorful.Color{B: 1})
	start := BlendHcl(red, blue, Constant(0.0)).ValueAt(0)
	end := BlendHcl(red, blue, Constant(1.0)).ValueAt(0)
	assert.True(t, start.AlmostEqualRgb(colorful.Color{R: 1}))
	assert.True(t, end.AlmostEqualRgb(colorful.Color{B: 1}))
}
