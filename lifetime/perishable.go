package lifetime

import (
	"container/list"
)

// Perishable pairs a value with the lifetime that owns it.
type Perishable[T any] struct {
	Value    T
	Lifetime Lifetime
}

type observer[T any] struct {
	fn   func(Perishable[T])
	life Lifetime
}

// A PerishableCollection holds values for as long as their lifetimes live.
// An entry is removed the moment its lifetime dies.
type PerishableCollection[T any] struct {
	items     *list.List
	observers *list.List
}

// NewPerishableCollection creates an empty collection.
func NewPerishableCollection[T any]() *PerishableCollection[T] {
	c := new(PerishableCollection[T])
	c.items = list.New()
	c.observers = list.New()
	return c
}

// Add inserts value for the duration of life. Values with a dead lifetime
// are ignored.
func (c *PerishableCollection[T]) Add(value T, life Lifetime) {
	if life.IsDead() {
		return
	}

	item := Perishable[T]{Value: value, Lifetime: life}
	e := c.items.PushBack(item)
	life.WhenDead(func() {
		c.items.Remove(e)
	}, Immortal)

	for _, o := range c.currentObservers() {
		if item.Lifetime.IsDead() {
			return
		}
		if o.life.IsDead() {
			continue
		}
		o.fn(item)
	}
}

// CurrentItems returns a snapshot of the live entries in insertion order.
func (c *PerishableCollection[T]) CurrentItems() []Perishable[T] {
	items := make([]Perishable[T], 0, c.items.Len())
	for e := c.items.Front(); e != nil; e = e.Next() {
		// An entry whose lifetime is dying may not be unlinked yet.
		item := e.Value.(Perishable[T])
		if item.Lifetime.IsDead() {
			continue
		}
		items = append(items, item)
	}
	return items
}

// CurrentAndFutureItems calls fn for every live entry and then for every
// entry added later, until life dies. Each entry is delivered once.
func (c *PerishableCollection[T]) CurrentAndFutureItems(life Lifetime, fn func(Perishable[T])) {
	if fn == nil {
		panic("lifetime: nil observer")
	}
	if life.IsDead() {
		return
	}

	// Entries added while the snapshot is replayed arrive through the
	// observer, never through the snapshot.
	snapshot := c.CurrentItems()
	e := c.observers.PushBack(observer[T]{fn: fn, life: life})
	life.WhenDead(func() {
		c.observers.Remove(e)
	}, Immortal)

	for _, item := range snapshot {
		if life.IsDead() {
			return
		}
		if item.Lifetime.IsDead() {
			continue
		}
		fn(item)
	}
}

// Len returns the number of live entries.
func (c *PerishableCollection[T]) Len() int {
	n := 0
	for e := c.items.Front(); e != nil; e = e.Next() {
		if !e.Value.(Perishable[T]).Lifetime.IsDead() {
			n++
		}
	}
	return n
}

func (c *PerishableCollection[T]) currentObservers() []observer[T] {
	observers := make([]observer[T], 0, c.observers.Len())
	for e := c.observers.Front(); e != nil; e = e.Next() {
		observers = append(observers, e.Value.(observer[T]))
	}
	return observers
}
