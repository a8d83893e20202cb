package components

import (
	"image/color"
	"math/rand/v2"

	"github.com/plus3/gobs/ecs"
)

// Demo geometry: 10x10 rects spawn anywhere in a 500x500 field and fall at
// 100 units per second.
const (
	ShapeSize      = 10.0
	ShapeFallSpeed = 100.0
	SpawnFieldW    = 500.0
	SpawnFieldH    = 500.0
)

// Shape is a falling colored rectangle. Position and fill color are
// randomized at construction from the injected random source; the component
// never touches global randomness.
type Shape struct {
	X, Y  float64
	Size  float64
	Speed float64
	Color color.RGBA
}

// NewShape draws a uniform position in [0,SpawnFieldW) x [0,SpawnFieldH) and
// a uniform value per color channel from rng.
func NewShape(rng *rand.Rand) *Shape {
	return &Shape{
		X:     rng.Float64() * SpawnFieldW,
		Y:     rng.Float64() * SpawnFieldH,
		Size:  ShapeSize,
		Speed: ShapeFallSpeed,
		Color: color.RGBA{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
			A: 0xff,
		},
	}
}

func (s *Shape) Update(dt float64) {
	s.Y += s.Speed * dt
}

func (s *Shape) Render(target ecs.Surface) {
	target.DrawRect(ecs.Rect{X: s.X, Y: s.Y, W: s.Size, H: s.Size, Color: s.Color})
}
