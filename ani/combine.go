package ani

import (
	"time"
)

// Select maps every value of a through f. The result is never marked
// constant, even when a is.
func Select[A, B any](a Ani[A], f func(A) B) Ani[B] {
	if a == nil {
		invalid("source")
	}
	if f == nil {
		invalid("selector")
	}
	return New(func(t time.Duration) B {
		return f(a.ValueAt(t))
	})
}

// SelectMany evaluates a at t, uses its value to choose another animation
// and evaluates that one at the same t.
func SelectMany[A, B any](a Ani[A], f func(A) Ani[B]) Ani[B] {
	if a == nil {
		invalid("source")
	}
	if f == nil {
		invalid("selector")
	}
	return New(func(t time.Duration) B {
		inner := f(a.ValueAt(t))
		if inner == nil {
			invalid("selected animation")
		}
		return inner.ValueAt(t)
	})
}

// SelectManySlice flattens each element of a's slice value through f into a
// single slice.
func SelectManySlice[A, B any](a Ani[[]A], f func(A) []B) Ani[[]B] {
	if a == nil {
		invalid("source")
	}
	if f == nil {
		invalid("selector")
	}
	return New(func(t time.Duration) []B {
		var out []B
		for _, v := range a.ValueAt(t) {
			out = append(out, f(v)...)
		}
		return out
	})
}

// Combine2 evaluates both sources at the same time and merges them with f.
func Combine2[A, B, R any](a Ani[A], b Ani[B], f func(A, B) R) Ani[R] {
	if a == nil || b == nil {
		invalid("source")
	}
	if f == nil {
		invalid("combiner")
	}
	return New(func(t time.Duration) R {
		return f(a.ValueAt(t), b.ValueAt(t))
	})
}

// Combine3 is Combine2 for three sources.
func Combine3[A, B, C, R any](a Ani[A], b Ani[B], c Ani[C], f func(A, B, C) R) Ani[R] {
	if a == nil || b == nil || c == nil {
		invalid("source")
	}
	if f == nil {
		invalid("combiner")
	}
	return New(func(t time.Duration) R {
		return f(a.ValueAt(t), b.ValueAt(t), c.ValueAt(t))
	})
}

// Combine4 is Combine2 for four sources.
func Combine4[A, B, C, D, R any](a Ani[A], b Ani[B], c Ani[C], d Ani[D], f func(A, B, C, D) R) Ani[R] {
	if a == nil || b == nil || c == nil || d == nil {
		invalid("source")
	}
	if f == nil {
		invalid("combiner")
	}
	return New(func(t time.Duration) R {
		return f(a.ValueAt(t), b.ValueAt(t), c.ValueAt(t), d.ValueAt(t))
	})
}

// Combine5 is Combine2 for five sources.
func Combine5[A, B, C, D, E, R any](a Ani[A], b Ani[B], c Ani[C], d Ani[D], e Ani[E],
	f func(A, B, C, D, E) R) Ani[R] {

	if a == nil || b == nil || c == nil || d == nil || e == nil {
		invalid("source")
	}
	if f == nil {
		invalid("combiner")
	}
	return New(func(t time.Duration) R {
		return f(a.ValueAt(t), b.ValueAt(t), c.ValueAt(t), d.ValueAt(t), e.ValueAt(t))
	})
}

// Combine6 is Combine2 for six sources.
func Combine6[A, B, C, D, E, F, R any](a Ani[A], b Ani[B], c Ani[C], d Ani[D], e Ani[E], g Ani[F],
	f func(A, B, C, D, E, F) R) Ani[R] {

	if a == nil || b == nil || c == nil || d == nil || e == nil || g == nil {
		invalid("source")
	}
	if f == nil {
		invalid("combiner")
	}
	return New(func(t time.Duration) R {
		return f(a.ValueAt(t), b.ValueAt(t), c.ValueAt(t), d.ValueAt(t), e.ValueAt(t), g.ValueAt(t))
	})
}

// Switch follows before until at, then after.
func Switch[T any](at time.Duration, before, after Ani[T]) Ani[T] {
	if before == nil || after == nil {
		invalid("source")
	}
	return New(func(t time.Duration) T {
		if t < at {
			return before.ValueAt(t)
		}
		return after.ValueAt(t)
	})
}

// Delay shifts a later in time by d. Before d it holds a's value at zero.
func Delay[T any](a Ani[T], d time.Duration) Ani[T] {
	if a == nil {
		invalid("source")
	}
	return New(func(t time.Duration) T {
		t -= d
		if t < 0 {
			t = 0
		}
		return a.ValueAt(t)
	})
}
