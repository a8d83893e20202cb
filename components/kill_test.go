package components_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/gobs/components"
	"github.com/plus3/gobs/ecs"
)

func TestKillRequiresCounterSibling(t *testing.T) {
	m := ecs.NewManager(ecs.NewRegistry())
	e := m.AddEntity()

	err := e.AddComponent(components.NewKill(components.DefaultKillThreshold))
	require.ErrorIs(t, err, ecs.ErrMissingComponent)
	assert.Equal(t, 0, e.ComponentCount())
}

func TestKillDestroysOwnerAtThreshold(t *testing.T) {
	m := ecs.NewManager(ecs.NewRegistry())
	e := m.AddEntity()
	e.MustAddComponent(components.NewCounter())
	e.MustAddComponent(components.NewKill(3.0))

	m.Update(1.0)
	m.Update(1.0)
	assert.True(t, e.Alive(), "threshold not reached yet")

	m.Update(1.0)
	assert.False(t, e.Alive())
}

// A counter, a shape, and a 3 second kill: after three one-second passes the
// entity is marked dead, and one more pass removes it from the manager and
// its group bucket.
func TestKillLifetimeScenario(t *testing.T) {
	const group = ecs.GroupID(5)

	m := ecs.NewManager(ecs.NewRegistry())
	rng := rand.New(rand.NewPCG(9, 9))

	e := m.AddEntity()
	e.MustAddComponent(components.NewCounter())
	e.MustAddComponent(components.NewShape(rng))
	e.MustAddComponent(components.NewKill(3.0))
	require.NoError(t, e.AddGroup(group))

	for i := 0; i < 3; i++ {
		m.Update(1.0)
	}
	assert.False(t, e.Alive())
	assert.Equal(t, 1, m.Len())

	// The dying frame still renders.
	surface := &recordSurface{}
	m.Render(surface)
	assert.Len(t, surface.rects, 1)

	m.Update(1.0)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.EntitiesByGroup(group))
	_, ok := m.Entity(e.ID())
	assert.False(t, ok)
}
