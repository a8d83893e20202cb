package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/gobs/ecs"
)

func TestRegisterAssignsIDsInFirstUseOrder(t *testing.T) {
	reg := ecs.NewRegistry()

	tickID, err := ecs.Register[*tick](reg)
	require.NoError(t, err)
	destructID, err := ecs.Register[*selfDestruct](reg)
	require.NoError(t, err)
	boxID, err := ecs.Register[*box](reg)
	require.NoError(t, err)

	assert.Equal(t, ecs.TypeID(0), tickID)
	assert.Equal(t, ecs.TypeID(1), destructID)
	assert.Equal(t, ecs.TypeID(2), boxID)
	assert.Equal(t, 3, reg.Len())
}

func TestRegisterIsStablePerKind(t *testing.T) {
	reg := ecs.NewRegistry()

	first := ecs.MustRegister[*tick](reg)
	ecs.MustRegister[*box](reg)

	for i := 0; i < 10; i++ {
		again, err := ecs.Register[*tick](reg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, 2, reg.Len())
}

func TestDistinctKindsGetDistinctIDs(t *testing.T) {
	reg := ecs.NewRegistry()

	ids := []ecs.TypeID{
		ecs.MustRegister[*tick](reg),
		ecs.MustRegister[*selfDestruct](reg),
		ecs.MustRegister[*needsTick](reg),
		ecs.MustRegister[*box](reg),
		ecs.MustRegister[*labelA](reg),
		ecs.MustRegister[*labelB](reg),
		ecs.MustRegister[*labelC](reg),
	}

	seen := make(map[ecs.TypeID]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	regA := ecs.NewRegistry()
	regB := ecs.NewRegistry()

	ecs.MustRegister[*box](regA)
	aID := ecs.MustRegister[*tick](regA)
	bID := ecs.MustRegister[*tick](regB)

	assert.Equal(t, ecs.TypeID(1), aID)
	assert.Equal(t, ecs.TypeID(0), bID)
}

// One small kind per possible id, plus one past the cap.
type (
	cap00 struct{ blank }
	cap01 struct{ blank }
	cap02 struct{ blank }
	cap03 struct{ blank }
	cap04 struct{ blank }
	cap05 struct{ blank }
	cap06 struct{ blank }
	cap07 struct{ blank }
	cap08 struct{ blank }
	cap09 struct{ blank }
	cap10 struct{ blank }
	cap11 struct{ blank }
	cap12 struct{ blank }
	cap13 struct{ blank }
	cap14 struct{ blank }
	cap15 struct{ blank }
	cap16 struct{ blank }
	cap17 struct{ blank }
	cap18 struct{ blank }
	cap19 struct{ blank }
	cap20 struct{ blank }
	cap21 struct{ blank }
	cap22 struct{ blank }
	cap23 struct{ blank }
	cap24 struct{ blank }
	cap25 struct{ blank }
	cap26 struct{ blank }
	cap27 struct{ blank }
	cap28 struct{ blank }
	cap29 struct{ blank }
	cap30 struct{ blank }
	cap31 struct{ blank }
	cap32 struct{ blank }
)

type blank struct{}

func (blank) Update(float64)     {}
func (blank) Render(ecs.Surface) {}

func TestRegistryCapacity(t *testing.T) {
	reg := ecs.NewRegistry()

	registerers := []func(*ecs.Registry) (ecs.TypeID, error){
		ecs.Register[*cap00], ecs.Register[*cap01], ecs.Register[*cap02], ecs.Register[*cap03],
		ecs.Register[*cap04], ecs.Register[*cap05], ecs.Register[*cap06], ecs.Register[*cap07],
		ecs.Register[*cap08], ecs.Register[*cap09], ecs.Register[*cap10], ecs.Register[*cap11],
		ecs.Register[*cap12], ecs.Register[*cap13], ecs.Register[*cap14], ecs.Register[*cap15],
		ecs.Register[*cap16], ecs.Register[*cap17], ecs.Register[*cap18], ecs.Register[*cap19],
		ecs.Register[*cap20], ecs.Register[*cap21], ecs.Register[*cap22], ecs.Register[*cap23],
		ecs.Register[*cap24], ecs.Register[*cap25], ecs.Register[*cap26], ecs.Register[*cap27],
		ecs.Register[*cap28], ecs.Register[*cap29], ecs.Register[*cap30], ecs.Register[*cap31],
	}
	require.Len(t, registerers, ecs.MaxComponentTypes)

	for i, register := range registerers {
		id, err := register(reg)
		require.NoError(t, err)
		assert.Equal(t, ecs.TypeID(i), id)
	}

	_, err := ecs.Register[*cap32](reg)
	require.ErrorIs(t, err, ecs.ErrCapacityExceeded)

	// A full registry still answers for known kinds.
	id, err := ecs.Register[*cap00](reg)
	require.NoError(t, err)
	assert.Equal(t, ecs.TypeID(0), id)
	assert.Equal(t, ecs.MaxComponentTypes, reg.Len())
}

func TestAddComponentRegistersLazily(t *testing.T) {
	m := newManager()
	e := m.AddEntity()

	assert.Equal(t, 0, m.Registry().Len())

	require.NoError(t, e.AddComponent(&tick{}))
	assert.Equal(t, 1, m.Registry().Len())

	require.NoError(t, e.AddComponent(&box{}))
	assert.Equal(t, 2, m.Registry().Len())
}
