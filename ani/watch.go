package ani

import (
	"time"

	"github.com/matt-g-everett/anitx/lifetime"
)

// Watch reports the values of a to onChange, skipping repeats, until life
// dies. See WatchFunc.
func Watch[T comparable](a Ani[T], life lifetime.Lifetime, pulse Pulse, onChange func(T)) {
	WatchFunc(a, life, pulse, onChange, func(x, y T) bool { return x == y })
}

// WatchFunc samples a once per pulse tick and calls onChange with the first
// sample and with every sample that eq says differs from the last one
// reported. A constant a is reported once, immediately, and the pulse is
// never subscribed.
func WatchFunc[T any](a Ani[T], life lifetime.Lifetime, pulse Pulse, onChange func(T), eq func(x, y T) bool) {
	if a == nil {
		invalid("source")
	}
	if onChange == nil {
		invalid("callback")
	}
	if eq == nil {
		invalid("equality")
	}
	if life.IsDead() {
		return
	}
	if a.IsConstant() {
		onChange(a.ValueAt(0))
		return
	}
	if pulse == nil {
		invalid("pulse")
	}

	var last T
	reported := false
	pulse.Subscribe(life, func(t time.Duration) {
		v := a.ValueAt(t)
		if reported && eq(last, v) {
			return
		}
		last, reported = v, true
		onChange(v)
	})
}
