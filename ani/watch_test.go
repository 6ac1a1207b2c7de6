package ani

import (
	"slices"
	"testing"
	"time"

	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/stretchr/testify/assert"
)

type refusingPulse struct {
	t *testing.T
}

func (p refusingPulse) Subscribe(lifetime.Lifetime, func(time.Duration)) {
	p.t.Fatal("constant watch must not subscribe to the pulse")
}

func TestWatchConstantFiresOnceSynchronously(t *testing.T) {
	var got []int
	Watch(Constant(5), lifetime.Immortal, refusingPulse{t}, func(v int) {
		got = append(got, v)
	})
	assert.Equal(t, []int{5}, got)
}

func TestWatchConstantIgnoresNilPulse(t *testing.T) {
	calls := 0
	Watch(Constant("x"), lifetime.Immortal, nil, func(string) { calls++ })
	assert.Equal(t, 1, calls)
}

func TestWatchReportsOnlyChanges(t *testing.T) {
	pulse := NewPulseSource()
	stepped := New(func(t time.Duration) int { return int(t / (100 * time.Millisecond)) })

	var got []int
	Watch(stepped, lifetime.Immortal, pulse, func(v int) {
		got = append(got, v)
	})
	assert.Empty(t, got, "nothing reported before the first tick")

	for _, ms := range []int{0, 30, 60, 90, 120, 150, 180, 210} {
		pulse.Fire(time.Duration(ms) * time.Millisecond)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1], got[i])
	}
}

func TestWatchFuncUsesEquality(t *testing.T) {
	pulse := NewPulseSource()
	grows := New(func(t time.Duration) []int {
		return make([]int, int(t/time.Second))
	})

	var lens []int
	WatchFunc(grows, lifetime.Immortal, pulse, func(v []int) {
		lens = append(lens, len(v))
	}, slices.Equal[[]int])

	pulse.Fire(0)
	pulse.Fire(500 * time.Millisecond)
	pulse.Fire(time.Second)
	pulse.Fire(1500 * time.Millisecond)
	assert.Equal(t, []int{0, 1}, lens)
}

func TestWatchStopsWhenLifetimeDies(t *testing.T) {
	pulse := NewPulseSource()
	src := lifetime.NewSource()
	calls := 0
	Watch(Time(), src.Lifetime(), pulse, func(time.Duration) { calls++ })

	pulse.Fire(1)
	src.EndLifetime()
	pulse.Fire(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, pulse.Len())
}

func TestWatchDeadLifetimeNeverFires(t *testing.T) {
	calls := 0
	Watch(Constant(1), lifetime.Dead, nil, func(int) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestPulseSubscriberAddedDuringFireWaits(t *testing.T) {
	pulse := NewPulseSource()
	late := 0
	pulse.Subscribe(lifetime.Immortal, func(time.Duration) {
		if pulse.Len() == 1 {
			pulse.Subscribe(lifetime.Immortal, func(time.Duration) { late++ })
		}
	})

	pulse.Fire(0)
	assert.Equal(t, 0, late)
	pulse.Fire(1)
	assert.Equal(t, 1, late)
}

func TestStepNext(t *testing.T) {
	s := Step{Previous: time.Second, Delta: 30 * time.Millisecond}
	assert.Equal(t, 1030*time.Millisecond, s.Next())
}
