package ecs_test

import (
	"fmt"

	"github.com/plus3/gobs/ecs"
)

// ExampleEntity demonstrates attaching components to an entity and reading
// them back through the typed accessors. An entity holds at most one
// component per kind, and the accessor returns the attached instance itself,
// so mutations through it are visible to every other holder.
func ExampleEntity() {
	manager := ecs.NewManager(ecs.NewRegistry())

	player := manager.AddEntity()
	player.MustAddComponent(&Health{Current: 100, Max: 100})

	if err := player.AddComponent(&Health{Current: 50, Max: 50}); err != nil {
		fmt.Println("second health rejected")
	}

	hp := ecs.MustGetComponent[*Health](player)
	hp.Current -= 30
	fmt.Printf("%d/%d hp\n", ecs.MustGetComponent[*Health](player).Current, hp.Max)

	// Output:
	// second health rejected
	// 70/100 hp
}

// ExampleInitializer shows a component resolving a sibling during its Init
// hook. Attachment order matters: the dependency must already be present.
func ExampleInitializer() {
	manager := ecs.NewManager(ecs.NewRegistry())

	e := manager.AddEntity()

	if err := e.AddComponent(&Regen{PerSecond: 5}); err != nil {
		fmt.Println("regen needs health first")
	}

	e.MustAddComponent(&Health{Current: 40, Max: 100})
	e.MustAddComponent(&Regen{PerSecond: 5})

	manager.Update(2.0)
	fmt.Printf("%d hp after regen\n", ecs.MustGetComponent[*Health](e).Current)

	// Output:
	// regen needs health first
	// 50 hp after regen
}

type Health struct {
	Current, Max int
}

func (h *Health) Update(float64)     {}
func (h *Health) Render(ecs.Surface) {}

type Regen struct {
	PerSecond int
	health    *Health
}

func (r *Regen) Init(owner *ecs.Entity) error {
	h, err := ecs.GetComponent[*Health](owner)
	if err != nil {
		return err
	}
	r.health = h
	return nil
}

func (r *Regen) Update(dt float64) {
	r.health.Current += int(float64(r.PerSecond) * dt)
	if r.health.Current > r.health.Max {
		r.health.Current = r.health.Max
	}
}

func (r *Regen) Render(ecs.Surface) {}
