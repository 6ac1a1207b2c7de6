package ani

import (
	"fmt"
	"math"
	"time"

	"github.com/fogleman/ease"
)

// EaseFunc maps linear progress in [0, 1] onto eased progress.
type EaseFunc func(float64) float64

// Progress climbs linearly from 0 at start to 1 at start+duration and holds
// outside that window. A non-positive duration jumps straight to 1 at start.
func Progress(start, duration time.Duration) Ani[float64] {
	return New(func(t time.Duration) float64 {
		return progressAt(t, start, duration)
	})
}

func progressAt(t, start, duration time.Duration) float64 {
	if t < start {
		return 0
	}
	if duration <= 0 || t >= start+duration {
		return 1
	}
	return float64(t-start) / float64(duration)
}

// Eased runs the progress of p through fn.
func Eased(p Ani[float64], fn EaseFunc) Ani[float64] {
	if fn == nil {
		invalid("easing")
	}
	return Select(p, func(v float64) float64 { return fn(v) })
}

// Tween moves from one value to another over duration, starting at start.
// A nil fn eases linearly.
func Tween(from, to float64, start, duration time.Duration, fn EaseFunc) Ani[float64] {
	if fn == nil {
		fn = ease.Linear
	}
	return New(func(t time.Duration) float64 {
		return from + (to-from)*fn(progressAt(t, start, duration))
	})
}

// SmoothTween is a Tween with quadratic ease in and out.
func SmoothTween(from, to float64, start, duration time.Duration) Ani[float64] {
	return Tween(from, to, start, duration, ease.InOutQuad)
}

// Periodic is the fraction of the current period that has elapsed, in
// [0, 1).
func Periodic(period time.Duration) Ani[float64] {
	if period <= 0 {
		panic(fmt.Errorf("%w: period must be positive", ErrInvalidArgument))
	}
	return New(func(t time.Duration) float64 {
		return float64(t%period) / float64(period)
	})
}

// Angle turns a full circle every period, in radians.
func Angle(period time.Duration) Ani[float64] {
	return Scale(Periodic(period), 2*math.Pi)
}

// Lut steps through table once per period.
func Lut(table []float64, period time.Duration) Ani[float64] {
	if len(table) == 0 {
		invalid("table")
	}
	return Select(Periodic(period), func(p float64) float64 {
		i := int(p * float64(len(table)))
		if i >= len(table) {
			i = len(table) - 1
		}
		return table[i]
	})
}

// Crossfade shows from until start, then blends towards to over duration
// and shows to afterwards.
func Crossfade[T any](from, to Ani[T], start, duration time.Duration, blend func(a, b T, p float64) T) Ani[T] {
	if from == nil || to == nil {
		invalid("source")
	}
	if blend == nil {
		invalid("blend")
	}
	return New(func(t time.Duration) T {
		p := progressAt(t, start, duration)
		switch {
		case p <= 0:
			return from.ValueAt(t)
		case p >= 1:
			return to.ValueAt(t)
		}
		return blend(from.ValueAt(t), to.ValueAt(t), p)
	})
}
