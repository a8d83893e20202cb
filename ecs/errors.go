package ecs

import "errors"

// Sentinel errors for the invariant violations the core can report. All of
// them indicate wiring mistakes rather than runtime conditions; call sites
// wrap them with context via fmt.Errorf and %w.
var (
	// ErrDuplicateComponent is returned when a component kind is attached to
	// an entity that already holds one of that kind.
	ErrDuplicateComponent = errors.New("duplicate component")

	// ErrMissingComponent is returned when a typed lookup finds no component
	// of the requested kind, including sibling resolution during Init.
	ErrMissingComponent = errors.New("missing component")

	// ErrCapacityExceeded is returned when a registry runs out of component
	// type ids or a group id falls outside the fixed group range.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
