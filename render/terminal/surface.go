// Package terminal adapts a tcell screen to the core Surface interface.
// Surface coordinates are scaled onto the terminal's cell grid so the demo's
// spawn field fits whatever window the program runs in.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/gobs/ecs"
)

// Surface draws core primitives as colored cell runs on a tcell screen.
type Surface struct {
	screen         tcell.Screen
	scaleX, scaleY float64
}

// NewSurface maps a fieldW x fieldH coordinate space onto the screen's
// current size. Recreate the surface after a resize event.
func NewSurface(screen tcell.Screen, fieldW, fieldH float64) *Surface {
	w, h := screen.Size()
	return &Surface{
		screen: screen,
		scaleX: float64(w) / fieldW,
		scaleY: float64(h) / fieldH,
	}
}

func (s *Surface) DrawRect(r ecs.Rect) {
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r.Color.R), int32(r.Color.G), int32(r.Color.B)))

	x0 := int(r.X * s.scaleX)
	y0 := int(r.Y * s.scaleY)
	x1 := int((r.X + r.W) * s.scaleX)
	y1 := int((r.Y + r.H) * s.scaleY)

	// A rect smaller than one cell still paints one cell.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	w, h := s.screen.Size()
	for y := max(y0, 0); y < y1 && y < h; y++ {
		for x := max(x0, 0); x < x1 && x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
