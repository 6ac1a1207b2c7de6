package scene

import (
	"testing"
	"time"

	"github.com/matt-g-everett/anitx/ani"
	"github.com/matt-g-everett/anitx/canvas"
	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/matt-g-everett/anitx/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkCreatesShapesForExistingAndFutureDescs(t *testing.T) {
	a := NewAnimation()
	c := canvas.New(100, 100, canvas.Transparent, nil)
	pulse := ani.NewPulseSource()

	a.Add(shape.PointDesc{Pos: ani.Constant(canvas.Pt(1, 1))}, lifetime.Immortal)
	a.Link(c, pulse, lifetime.Immortal)
	require.Len(t, c.Shapes(), 1)

	a.Add(shape.LineSegmentDesc{}, lifetime.Immortal)
	a.Add(shape.RectDesc{}, lifetime.Immortal)
	a.Add(shape.PolygonDesc{}, lifetime.Immortal)
	a.Add(shape.TextDesc{}, lifetime.Immortal)
	assert.Len(t, c.Shapes(), 5)

	e, ok := c.Shapes()[0].(*canvas.Ellipse)
	require.True(t, ok)
	assert.Equal(t, canvas.Pt(1, 1), e.Center)
}

func TestDescLifetimeRemovesShape(t *testing.T) {
	a := NewAnimation()
	c := canvas.New(100, 100, canvas.Transparent, nil)
	a.Link(c, ani.NewPulseSource(), lifetime.Immortal)

	src := lifetime.NewSource()
	a.Add(shape.RectDesc{}, src.Lifetime())
	a.Add(shape.RectDesc{}, lifetime.Immortal)
	require.Len(t, c.Shapes(), 2)

	src.EndLifetime()
	assert.Len(t, c.Shapes(), 1)
	assert.Equal(t, 1, a.Rects.Len())
}

func TestLinkLifetimeRemovesEverything(t *testing.T) {
	a := NewAnimation()
	c := canvas.New(100, 100, canvas.Transparent, nil)
	pulse := ani.NewPulseSource()
	link := lifetime.NewSource()

	a.Add(shape.TextDesc{Text: ani.Constant("t")}, lifetime.Immortal)
	a.Link(c, pulse, link.Lifetime())
	require.Len(t, c.Shapes(), 1)
	require.Equal(t, 1, pulse.Len())

	link.EndLifetime()
	assert.Empty(t, c.Shapes())
	assert.Equal(t, 0, pulse.Len())

	a.Add(shape.PointDesc{}, lifetime.Immortal)
	assert.Empty(t, c.Shapes(), "no longer linked")
}

func TestOnStep(t *testing.T) {
	a := NewAnimation()
	var got []ani.Step
	a.OnStep(func(s ani.Step) { got = append(got, s) }, lifetime.Immortal)

	for _, item := range a.StepActions.CurrentItems() {
		item.Value(ani.Step{Previous: time.Second, Delta: time.Millisecond})
	}
	assert.Len(t, got, 1)
}

func TestAddUnknownDescPanics(t *testing.T) {
	a := NewAnimation()
	assert.Panics(t, func() { a.Add(unknownDesc{}, lifetime.Immortal) })
}

type unknownDesc struct{}

func (unknownDesc) Instantiate(*canvas.Canvas, ani.Pulse, lifetime.Lifetime) {}
