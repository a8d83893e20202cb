package ecs

import (
	"fmt"
	"reflect"
)

// TypeID identifies a component kind within a Registry. Ids are assigned in
// first-use order starting at 0 and stay stable for the registry's lifetime.
type TypeID uint8

// MaxComponentTypes is the number of distinct component kinds a registry can
// hold. Entity presence masks are 32 bits wide, so the cap is fixed.
const MaxComponentTypes = 32

// Registry maps component kinds to small integer ids. Each Manager carries
// its own Registry, allowing multiple independent managers to coexist without
// interference.
type Registry struct {
	ids  map[reflect.Type]TypeID
	next TypeID
}

// NewRegistry creates an empty component type registry.
func NewRegistry() *Registry {
	return &Registry{
		ids: make(map[reflect.Type]TypeID, MaxComponentTypes),
	}
}

// typeID returns the id for t, assigning the next free one on first use.
func (r *Registry) typeID(t reflect.Type) (TypeID, error) {
	if id, ok := r.ids[t]; ok {
		return id, nil
	}
	if int(r.next) >= MaxComponentTypes {
		return 0, fmt.Errorf("%w: cannot assign id for %s, registry already holds %d component kinds",
			ErrCapacityExceeded, t, MaxComponentTypes)
	}
	id := r.next
	r.ids[t] = id
	r.next++
	return id, nil
}

// lookup returns the id for t without assigning one.
func (r *Registry) lookup(t reflect.Type) (TypeID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// Len returns the number of component kinds the registry has seen.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Register assigns an id for component kind T, or returns the existing one.
// Registration also happens implicitly on the first Entity.AddComponent of a
// kind; explicit registration is only needed to pin id order up front.
func Register[T Component](r *Registry) (TypeID, error) {
	return r.typeID(reflect.TypeFor[T]())
}

// MustRegister is Register for wiring code where running out of type ids is a
// programmer error.
func MustRegister[T Component](r *Registry) TypeID {
	id, err := Register[T](r)
	if err != nil {
		panic(err)
	}
	return id
}
