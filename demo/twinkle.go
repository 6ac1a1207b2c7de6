package demo

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/anitx/ani"
	"github.com/matt-g-everett/anitx/canvas"
	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/matt-g-everett/anitx/scene"
	"github.com/matt-g-everett/anitx/shape"
	"github.com/matt-g-everett/anitx/util"
)

// Starlight is the palette twinkling stars are drawn from.
var Starlight = []colorful.Color{
	colorful.Hcl(280.0, 0.3, 0.3),
	colorful.Hcl(200.0, 0.4, 0.35),
	colorful.Hcl(60.0, 0.2, 0.4),
	{R: 0.25, G: 0.25, B: 0.3},
}

type twinkle struct {
	a      *scene.Animation
	rng    *rand.Rand
	width  float64
	height float64
	stars  []*lifetime.Source
	chance int32
	life   lifetime.Lifetime
}

// Twinkle scatters count stars over the canvas. Each one brightens and dims
// on its own cycle, and every frame there is a one in chance of a star
// being replaced somewhere else.
func Twinkle(width, height, count int, chance int32, rng *rand.Rand, life lifetime.Lifetime) *scene.Animation {
	t := new(twinkle)
	t.a = scene.NewAnimation()
	t.rng = rng
	t.width = float64(width)
	t.height = float64(height)
	t.chance = chance
	t.life = life

	t.stars = make([]*lifetime.Source, count)
	for i := range t.stars {
		t.stars[i] = t.addStar(0)
	}
	t.a.OnStep(t.step, life)
	return t.a
}

func (t *twinkle) addStar(born time.Duration) *lifetime.Source {
	star := lifetime.Dependent(t.life)
	colour := Starlight[t.rng.Intn(len(Starlight))]
	lut := util.GenerateLut((t.rng.Intn(18) + 6) * 2)
	period := time.Duration(util.RandomRange(t.rng, 1, 3) * float64(time.Second))
	gain := ani.Delay(ani.Lut(lut, period), born)

	t.a.Add(shape.PointDesc{
		Pos: ani.Constant(canvas.Pt(t.rng.Float64()*t.width, t.rng.Float64()*t.height)),
		Fill: ani.Select(gain, func(g float64) canvas.Color {
			return canvas.Opaque(brighten(colour, g))
		}),
		Radius: ani.Select(gain, func(g float64) float64 { return 1.5 + 2*g }),
	}, star.Lifetime())
	return star
}

// brighten pushes c's luminance towards 0.6 by gain.
func brighten(c colorful.Color, gain float64) colorful.Color {
	h, chroma, l := c.Hcl()
	lumDiff := 0.6 - l
	return colorful.Hcl(h, chroma, l+(lumDiff*gain)).Clamped()
}

func (t *twinkle) step(s ani.Step) {
	if len(t.stars) == 0 || t.rng.Int31n(t.chance) != 0 {
		return
	}
	i := t.rng.Intn(len(t.stars))
	t.stars[i].EndLifetime()
	t.stars[i] = t.addStar(s.Next())
}
