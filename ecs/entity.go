package ecs

import (
	"fmt"
	"reflect"
)

// GroupID identifies a classification group. Valid ids are 0..MaxGroups-1.
type GroupID uint8

// MaxGroups is the number of distinct groups a manager tracks. Entity group
// membership is a 32-bit mask, so the cap is fixed.
const MaxGroups = 32

// EntityID is a manager-unique handle for an entity, stable until the entity
// is reaped.
type EntityID uint64

// Entity owns an ordered heterogeneous set of components plus a liveness
// flag and group memberships. Entities are created by Manager.AddEntity and
// removed by the manager's next update pass after Destroy.
type Entity struct {
	id      EntityID
	manager *Manager

	components []Component                  // attachment order, which is also update/render order
	table      [MaxComponentTypes]Component // direct lookup by TypeID
	present    mask

	groups   mask
	bucketed mask // buckets currently holding an entry for this entity
	alive    bool
}

// ID returns the entity's manager-unique handle.
func (e *Entity) ID() EntityID {
	return e.id
}

// Alive reports whether the entity has not been destroyed. A destroyed entity
// keeps its slot, and still renders once, until the next update pass reaps it.
func (e *Entity) Alive() bool {
	return e.alive
}

// Destroy marks the entity dead. Removal is deferred to the start of the
// manager's next update pass, so component logic may destroy its own entity
// mid-update without invalidating the pass's iteration.
func (e *Entity) Destroy() {
	e.alive = false
}

// AddComponent attaches c, lazily assigning a type id for its kind, and runs
// its Init hook if it has one. An entity holds at most one component per
// kind: attaching a second returns ErrDuplicateComponent and leaves the
// entity unchanged. A failed Init also leaves the entity unchanged.
func (e *Entity) AddComponent(c Component) error {
	t := reflect.TypeOf(c)
	id, err := e.manager.registry.typeID(t)
	if err != nil {
		return err
	}
	if e.present.has(uint8(id)) {
		return fmt.Errorf("%w: %s on entity %d", ErrDuplicateComponent, t, e.id)
	}

	e.components = append(e.components, c)
	e.table[id] = c
	e.present.set(uint8(id))

	if init, ok := c.(Initializer); ok {
		if err := init.Init(e); err != nil {
			e.components = e.components[:len(e.components)-1]
			e.table[id] = nil
			e.present.unset(uint8(id))
			return fmt.Errorf("init %s on entity %d: %w", t, e.id, err)
		}
	}
	return nil
}

// MustAddComponent is AddComponent for wiring code where a duplicate kind or
// failed Init is a programmer error.
func (e *Entity) MustAddComponent(c Component) {
	if err := e.AddComponent(c); err != nil {
		panic(err)
	}
}

// Components returns the entity's components in attachment order.
func (e *Entity) Components() []Component {
	return e.components
}

// ComponentCount returns the number of attached components.
func (e *Entity) ComponentCount() int {
	return len(e.components)
}

// HasComponent reports whether e holds a component of kind T.
func HasComponent[T Component](e *Entity) bool {
	id, ok := e.manager.registry.lookup(reflect.TypeFor[T]())
	return ok && e.present.has(uint8(id))
}

// GetComponent returns e's component of kind T, or ErrMissingComponent. The
// returned instance is identity-stable for the entity's lifetime.
func GetComponent[T Component](e *Entity) (T, error) {
	var zero T
	t := reflect.TypeFor[T]()
	id, ok := e.manager.registry.lookup(t)
	if !ok || !e.present.has(uint8(id)) {
		return zero, fmt.Errorf("%w: %s on entity %d", ErrMissingComponent, t, e.id)
	}
	return e.table[id].(T), nil
}

// MustGetComponent is GetComponent for call sites whose invariants guarantee
// the component is present.
func MustGetComponent[T Component](e *Entity) T {
	c, err := GetComponent[T](e)
	if err != nil {
		panic(err)
	}
	return c
}

// AddGroup adds e to group g and registers it in the manager's bucket for g.
// Adding an already-held group is a no-op.
func (e *Entity) AddGroup(g GroupID) error {
	if g >= MaxGroups {
		return fmt.Errorf("%w: group %d, ids run 0..%d", ErrCapacityExceeded, g, MaxGroups-1)
	}
	e.groups.set(uint8(g))
	// A remove-then-rejoin before the next purge would otherwise append a
	// second entry for the same entity.
	if !e.bucketed.has(uint8(g)) {
		e.bucketed.set(uint8(g))
		e.manager.addToGroup(e, g)
	}
	return nil
}

// HasGroup reports whether e currently claims group g.
func (e *Entity) HasGroup(g GroupID) bool {
	return g < MaxGroups && e.groups.has(uint8(g))
}

// RemoveGroup clears e's membership in g. The manager's bucket drops its
// entry lazily at the start of the next update pass.
func (e *Entity) RemoveGroup(g GroupID) {
	if g < MaxGroups {
		e.groups.unset(uint8(g))
	}
}

// Groups returns the ids of the groups e currently claims, in ascending order.
func (e *Entity) Groups() []GroupID {
	var out []GroupID
	for g := GroupID(0); g < MaxGroups; g++ {
		if e.groups.has(uint8(g)) {
			out = append(out, g)
		}
	}
	return out
}

// Update advances every component in attachment order. Ordering between
// dependent components is the caller's concern: attach producers before
// consumers.
func (e *Entity) Update(dt float64) {
	for _, c := range e.components {
		c.Update(dt)
	}
}

// Render draws every component in attachment order.
func (e *Entity) Render(target Surface) {
	for _, c := range e.components {
		c.Render(target)
	}
}
