package ecs_test

import (
	"fmt"

	"github.com/plus3/gobs/ecs"
)

// ExampleManager demonstrates the deferred deletion cycle. Destroy only marks
// an entity; it keeps updating nothing and rendering its last frame until the
// start of the next update pass reaps it.
func ExampleManager() {
	manager := ecs.NewManager(ecs.NewRegistry())

	e := manager.AddEntity()
	e.MustAddComponent(&Fuse{Seconds: 2})

	for pass := 1; pass <= 4; pass++ {
		manager.Update(1.0)
		fmt.Printf("pass %d: %d entities, alive=%v\n", pass, manager.Len(), e.Alive())
	}

	// Output:
	// pass 1: 1 entities, alive=true
	// pass 2: 1 entities, alive=false
	// pass 3: 0 entities, alive=false
	// pass 4: 0 entities, alive=false
}

// ExampleManager_EntitiesByGroup shows tagging entities with group ids and
// iterating a single group's bucket.
func ExampleManager_EntitiesByGroup() {
	const GroupEnemies = ecs.GroupID(1)

	manager := ecs.NewManager(ecs.NewRegistry())

	for i := 0; i < 3; i++ {
		enemy := manager.AddEntity()
		enemy.MustAddComponent(&Health{Current: 10, Max: 10})
		if err := enemy.AddGroup(GroupEnemies); err != nil {
			panic(err)
		}
	}
	manager.AddEntity() // scenery, no group

	fmt.Printf("%d entities, %d enemies\n",
		manager.Len(), len(manager.EntitiesByGroup(GroupEnemies)))

	for _, enemy := range manager.EntitiesByGroup(GroupEnemies) {
		enemy.Destroy()
	}
	manager.Update(0.016)

	fmt.Printf("%d entities, %d enemies\n",
		manager.Len(), len(manager.EntitiesByGroup(GroupEnemies)))

	// Output:
	// 4 entities, 3 enemies
	// 1 entities, 0 enemies
}

type Fuse struct {
	Seconds float64
	owner   *ecs.Entity
}

func (f *Fuse) Init(owner *ecs.Entity) error {
	f.owner = owner
	return nil
}

func (f *Fuse) Update(dt float64) {
	f.Seconds -= dt
	if f.Seconds <= 0 {
		f.owner.Destroy()
	}
}

func (f *Fuse) Render(ecs.Surface) {}
