// Package ebiten adapts an ebiten image to the core Surface interface.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/gobs/ecs"
)

// Surface draws core primitives onto an ebiten image. Wrap the frame's
// screen image in Draw and hand it to Manager.Render.
type Surface struct {
	Target *ebiten.Image
}

func NewSurface(target *ebiten.Image) *Surface {
	return &Surface{Target: target}
}

func (s *Surface) DrawRect(r ecs.Rect) {
	vector.DrawFilledRect(s.Target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
}
