// Package components provides the stock component variants used by the demo
// drivers: an elapsed-time accumulator, a falling colored rectangle, and a
// lifetime kill switch that ties the two together.
package components

import "github.com/plus3/gobs/ecs"

// Counter accumulates elapsed time. Other components (Kill) read Elapsed to
// drive lifetime decisions.
type Counter struct {
	Elapsed float64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Update(dt float64) {
	c.Elapsed += dt
}

func (c *Counter) Render(ecs.Surface) {}
