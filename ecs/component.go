package ecs

// Component is a reusable behavior fragment attached to an Entity. Update is
// invoked once per frame while the owner is alive, Render once per frame
// after the update pass. Non-visual components implement Render as a no-op.
type Component interface {
	Update(dt float64)
	Render(target Surface)
}

// Initializer is implemented by components that need their owner at attach
// time, typically to resolve sibling components via the typed lookup
// functions. Init runs exactly once, after the component is stored on the
// entity and before its first Update. The owner reference is non-owning: the
// entity always outlives the components it holds, and the reference must
// never be used to extend that lifetime.
//
// A non-nil error aborts the attach; Entity.AddComponent rolls the component
// back out and surfaces the error.
type Initializer interface {
	Init(owner *Entity) error
}
