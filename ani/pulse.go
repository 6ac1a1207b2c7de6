package ani

import (
	"time"

	"github.com/matt-g-everett/anitx/lifetime"
)

// A Pulse delivers discrete ticks carrying the elapsed time to sample at.
type Pulse interface {
	Subscribe(life lifetime.Lifetime, tick func(t time.Duration))
}

// PulseSource is a Pulse fired by hand, usually once per frame.
type PulseSource struct {
	subs *lifetime.PerishableCollection[func(time.Duration)]
}

// NewPulseSource creates a PulseSource with no subscribers.
func NewPulseSource() *PulseSource {
	p := new(PulseSource)
	p.subs = lifetime.NewPerishableCollection[func(time.Duration)]()
	return p
}

// Subscribe calls tick on every Fire until life dies.
func (p *PulseSource) Subscribe(life lifetime.Lifetime, tick func(t time.Duration)) {
	if tick == nil {
		invalid("tick")
	}
	p.subs.Add(tick, life)
}

// Fire ticks the subscribers present when Fire is called. Subscribers added
// by a tick are first ticked on the next Fire.
func (p *PulseSource) Fire(t time.Duration) {
	for _, sub := range p.subs.CurrentItems() {
		if sub.Lifetime.IsDead() {
			continue
		}
		sub.Value(t)
	}
}

// Len returns the number of live subscribers.
func (p *PulseSource) Len() int {
	return p.subs.Len()
}
