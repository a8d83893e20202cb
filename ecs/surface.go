package ecs

import "image/color"

// Rect is the drawing primitive handed to a Surface.
type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Surface is the drawing target passed into Render. The core never creates
// or owns one; drivers wrap their backend's frame buffer. See render/ebiten
// and render/terminal for implementations.
type Surface interface {
	DrawRect(Rect)
}

// NopSurface discards every draw call. Useful for headless runs such as the
// stress harness.
type NopSurface struct{}

func (NopSurface) DrawRect(Rect) {}
