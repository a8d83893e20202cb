package ecs_test

import (
	"fmt"

	"github.com/plus3/gobs/ecs"
)

// Common test components.

// tick counts update calls and accumulates dt.
type tick struct {
	Updates int
	Elapsed float64
}

func (t *tick) Update(dt float64) {
	t.Updates++
	t.Elapsed += dt
}

func (t *tick) Render(ecs.Surface) {}

// label writes "<name>:update" / "<name>:render" entries into a shared trace
// so tests can assert dispatch order. Distinct wrapper types below let one
// entity hold several of them.
type label struct {
	name  string
	trace *[]string
}

func (l *label) Update(float64) {
	*l.trace = append(*l.trace, l.name+":update")
}

func (l *label) Render(ecs.Surface) {
	*l.trace = append(*l.trace, l.name+":render")
}

type labelA struct{ label }
type labelB struct{ label }
type labelC struct{ label }

// selfDestruct destroys its owner during its Nth update.
type selfDestruct struct {
	after int
	owner *ecs.Entity
	seen  int
}

func (s *selfDestruct) Init(owner *ecs.Entity) error {
	s.owner = owner
	return nil
}

func (s *selfDestruct) Update(float64) {
	s.seen++
	if s.seen >= s.after {
		s.owner.Destroy()
	}
}

func (s *selfDestruct) Render(ecs.Surface) {}

// needsTick resolves a sibling tick at init and fails if it is absent.
type needsTick struct {
	counter *tick
}

func (n *needsTick) Init(owner *ecs.Entity) error {
	c, err := ecs.GetComponent[*tick](owner)
	if err != nil {
		return fmt.Errorf("needsTick: %w", err)
	}
	n.counter = c
	return nil
}

func (n *needsTick) Update(float64) {}

func (n *needsTick) Render(ecs.Surface) {}

// box renders a fixed rect, for render-order assertions.
type box struct {
	rect ecs.Rect
}

func (b *box) Update(float64) {}

func (b *box) Render(target ecs.Surface) {
	target.DrawRect(b.rect)
}

// recordSurface captures draw calls in order.
type recordSurface struct {
	rects []ecs.Rect
}

func (r *recordSurface) DrawRect(rect ecs.Rect) {
	r.rects = append(r.rects, rect)
}

func newManager() *ecs.Manager {
	return ecs.NewManager(ecs.NewRegistry())
}
