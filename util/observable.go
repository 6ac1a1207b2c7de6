package util

import (
	"sync"

	"github.com/matt-g-everett/anitx/lifetime"
)

// ObservableValue holds a value and tells subscribers when it changes. Unlike
// the rest of the engine it is safe to use from several goroutines.
type ObservableValue[T any] struct {
	mu      sync.Mutex
	current T
	equal   func(a, b T) bool
	subs    map[uint64]func(T)
	nextID  uint64
}

// NewObservableValue creates an ObservableValue starting at initial. A nil
// equal treats every Set as a change.
func NewObservableValue[T any](initial T, equal func(a, b T) bool) *ObservableValue[T] {
	v := new(ObservableValue[T])
	v.current = initial
	v.equal = equal
	v.subs = make(map[uint64]func(T))
	return v
}

// Current returns the latest value.
func (v *ObservableValue[T]) Current() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set stores value and notifies subscribers if it differs from the current
// one. Subscribers run on the caller's goroutine, outside the lock.
func (v *ObservableValue[T]) Set(value T) {
	v.mu.Lock()
	if v.equal != nil && v.equal(v.current, value) {
		v.mu.Unlock()
		return
	}
	v.current = value
	subs := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Subscribe calls fn with every change until life dies.
func (v *ObservableValue[T]) Subscribe(life lifetime.Lifetime, fn func(T)) {
	if life.IsDead() {
		return
	}
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	life.WhenDead(func() {
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}, lifetime.Immortal)
}
