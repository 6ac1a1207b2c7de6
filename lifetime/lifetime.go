// Package lifetime provides scopes that die exactly once and run their
// registered cleanup when they do.
//
// Lifetimes and the collections built on them are not safe for concurrent
// use. Everything that touches them runs on the frame loop goroutine.
package lifetime

import (
	"container/list"
)

// A Lifetime is a handle on a scope of validity. It moves from alive to dead
// at most once and dead is terminal. The zero value is Immortal.
type Lifetime struct {
	s *state
}

type state struct {
	dead      bool
	callbacks *list.List
}

func newState() *state {
	s := new(state)
	s.callbacks = list.New()
	return s
}

func (s *state) add(fn func()) *list.Element {
	return s.callbacks.PushBack(fn)
}

func (s *state) remove(e *list.Element) {
	if s.dead {
		return
	}
	s.callbacks.Remove(e)
}

func (s *state) kill() {
	if s.dead {
		return
	}
	s.dead = true
	callbacks := s.callbacks
	s.callbacks = list.New()
	for e := callbacks.Front(); e != nil; e = e.Next() {
		e.Value.(func())()
	}
}

var (
	// Immortal never dies.
	Immortal = Lifetime{}

	// Dead is already over. Callbacks registered on it run immediately.
	Dead = Lifetime{s: &state{dead: true, callbacks: list.New()}}
)

// IsDead reports whether the lifetime has ended.
func (l Lifetime) IsDead() bool {
	return l.s != nil && l.s.dead
}

// IsImmortal reports whether the lifetime can never end.
func (l Lifetime) IsImmortal() bool {
	return l.s == nil
}

// WhenDead registers fn to run when l dies. If l is already dead fn runs
// now. If registration dies before l, fn is dropped without running.
func (l Lifetime) WhenDead(fn func(), registration Lifetime) {
	if fn == nil {
		panic("lifetime: nil callback")
	}
	if l.s == nil || registration.IsDead() {
		return
	}
	if l.s.dead {
		fn()
		return
	}

	r := registration.s
	if r == nil || r == l.s {
		l.s.add(fn)
		return
	}

	// Each side unhooks the other so neither list keeps stale entries.
	var unhook *list.Element
	e := l.s.add(func() {
		r.remove(unhook)
		fn()
	})
	s := l.s
	unhook = r.add(func() {
		s.remove(e)
	})
}

// A Source owns a Lifetime and decides when it ends.
type Source struct {
	life Lifetime
}

// NewSource creates a Source whose lifetime is alive.
func NewSource() *Source {
	s := new(Source)
	s.life = Lifetime{s: newState()}
	return s
}

// Lifetime returns the lifetime controlled by the source.
func (s *Source) Lifetime() Lifetime {
	return s.life
}

// EndLifetime kills the lifetime and runs its callbacks in registration
// order. Calling it again does nothing.
func (s *Source) EndLifetime() {
	s.life.s.kill()
}

// Dependent creates a Source whose lifetime also ends when parent ends.
func Dependent(parent Lifetime) *Source {
	src := NewSource()
	parent.WhenDead(src.EndLifetime, src.Lifetime())
	return src
}

// Min returns a lifetime that dies as soon as either a or b dies.
func Min(a, b Lifetime) Lifetime {
	switch {
	case a.IsDead() || b.IsDead():
		return Dead
	case a.IsImmortal():
		return b
	case b.IsImmortal() || a.s == b.s:
		return a
	}
	src := NewSource()
	a.WhenDead(src.EndLifetime, src.Lifetime())
	b.WhenDead(src.EndLifetime, src.Lifetime())
	return src.Lifetime()
}
