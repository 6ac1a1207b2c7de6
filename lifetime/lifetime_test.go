package lifetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceEndsOnce(t *testing.T) {
	src := NewSource()
	life := src.Lifetime()
	calls := 0
	life.WhenDead(func() { calls++ }, Immortal)

	assert.False(t, life.IsDead())
	src.EndLifetime()
	src.EndLifetime()

	assert.True(t, life.IsDead())
	assert.Equal(t, 1, calls)
}

func TestCallbacksRunInRegistrationOrder(t *testing.T) {
	src := NewSource()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		src.Lifetime().WhenDead(func() { order = append(order, i) }, Immortal)
	}
	src.EndLifetime()
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestWhenDeadOnDeadRunsImmediately(t *testing.T) {
	ran := false
	Dead.WhenDead(func() { ran = true }, Immortal)
	assert.True(t, ran)
}

func TestImmortalNeverRuns(t *testing.T) {
	assert.True(t, Immortal.IsImmortal())
	assert.False(t, Immortal.IsDead())
	ran := false
	Immortal.WhenDead(func() { ran = true }, Immortal)
	assert.False(t, ran)
}

func TestRegistrationLifetimeDropsCallback(t *testing.T) {
	src := NewSource()
	reg := NewSource()
	ran := false
	src.Lifetime().WhenDead(func() { ran = true }, reg.Lifetime())

	reg.EndLifetime()
	src.EndLifetime()
	assert.False(t, ran)
	assert.Equal(t, 0, reg.life.s.callbacks.Len())
}

func TestRegistrationUnhookedWhenTargetDies(t *testing.T) {
	src := NewSource()
	reg := NewSource()
	src.Lifetime().WhenDead(func() {}, reg.Lifetime())
	require.Equal(t, 1, reg.life.s.callbacks.Len())

	src.EndLifetime()
	assert.Equal(t, 0, reg.life.s.callbacks.Len())
}

func TestDependentDiesWithParent(t *testing.T) {
	parent := NewSource()
	child := Dependent(parent.Lifetime())

	child.EndLifetime()
	assert.False(t, parent.Lifetime().IsDead())

	other := Dependent(parent.Lifetime())
	parent.EndLifetime()
	assert.True(t, other.Lifetime().IsDead())
}

func TestDependentOfDeadIsDead(t *testing.T) {
	assert.True(t, Dependent(Dead).Lifetime().IsDead())
}

func TestMin(t *testing.T) {
	a := NewSource()
	b := NewSource()
	m := Min(a.Lifetime(), b.Lifetime())

	assert.False(t, m.IsDead())
	b.EndLifetime()
	assert.True(t, m.IsDead())
	assert.False(t, a.Lifetime().IsDead())
}

func TestMinShortcuts(t *testing.T) {
	a := NewSource()
	assert.Equal(t, a.Lifetime(), Min(a.Lifetime(), Immortal))
	assert.Equal(t, a.Lifetime(), Min(Immortal, a.Lifetime()))
	assert.True(t, Min(a.Lifetime(), Dead).IsDead())
	assert.True(t, Min(Immortal, Immortal).IsImmortal())
}
