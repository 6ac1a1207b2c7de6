// Package ani implements time-varying values: functions from elapsed time to
// a value, with combinators for building animations out of smaller ones.
//
// Values are pulled, never pushed. A frame asks each Ani for its value at the
// frame's time and Watch turns those samples into change notifications.
package ani

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is wrapped by the panics raised when a constructor or
// combinator is given a nil function or source.
var ErrInvalidArgument = errors.New("ani: invalid argument")

// An Ani is a value that varies with time.
type Ani[T any] interface {
	// ValueAt returns the value at elapsed time t.
	ValueAt(t time.Duration) T

	// IsConstant reports whether ValueAt ignores t.
	IsConstant() bool
}

func invalid(what string) {
	panic(fmt.Errorf("%w: %s is nil", ErrInvalidArgument, what))
}

type constant[T any] struct {
	value T
}

func (c constant[T]) ValueAt(time.Duration) T { return c.value }
func (c constant[T]) IsConstant() bool        { return true }

// Constant lifts a fixed value into an Ani.
func Constant[T any](value T) Ani[T] {
	return constant[T]{value: value}
}

// anon wraps a function of time and remembers the last value it produced.
type anon[T any] struct {
	f        func(time.Duration) T
	constant bool

	cached bool
	lastT  time.Duration
	lastV  T
}

func (a *anon[T]) ValueAt(t time.Duration) T {
	if a.cached && (a.constant || a.lastT == t) {
		return a.lastV
	}
	v := a.f(t)
	a.lastT, a.lastV, a.cached = t, v, true
	return v
}

func (a *anon[T]) IsConstant() bool {
	return a.constant
}

// Anon wraps f. When isConstant is set, f is evaluated once and its result
// reused for every t.
func Anon[T any](f func(time.Duration) T, isConstant bool) Ani[T] {
	if f == nil {
		invalid("function")
	}
	a := new(anon[T])
	a.f = f
	a.constant = isConstant
	return a
}

// New wraps a non-constant function of time.
func New[T any](f func(time.Duration) T) Ani[T] {
	return Anon(f, false)
}

// Time is the identity animation: its value is the elapsed time itself.
func Time() Ani[time.Duration] {
	return New(func(t time.Duration) time.Duration { return t })
}

// Seconds is the elapsed time in seconds.
func Seconds() Ani[float64] {
	return New(func(t time.Duration) float64 { return t.Seconds() })
}
