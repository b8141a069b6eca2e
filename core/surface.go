package core

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultOverscan stretches the surface 1% below the visible viewport
const DefaultOverscan = 1.01

// Surface holds the drawing surface dimensions in pixels
type Surface struct {
	Width, Height int
}

// NewSurface sizes a surface from the visible viewport
// Height is truncated like a canvas dimension assignment
func NewSurface(viewW, viewH int, overscan float64) Surface {
	return Surface{
		Width:  viewW,
		Height: int(float64(viewH) * overscan),
	}
}

// ToNDC converts a pixel coordinate to normalized device coordinates
// Screen Y grows downward, NDC Y grows upward
// Zero dimensions yield Inf/NaN on purpose: a misconfigured surface must show
func (s Surface) ToNDC(px, py float64) r2.Vec {
	w, h := float64(s.Width), float64(s.Height)
	return r2.Vec{
		X: 2*px/w - 1,
		Y: -(2*py/h - 1),
	}
}

// ToPixel converts normalized device coordinates to a pixel coordinate
func (s Surface) ToPixel(v r2.Vec) (px, py float64) {
	px = (v.X + 1) / 2 * float64(s.Width)
	py = (1 - v.Y) / 2 * float64(s.Height)
	return px, py
}

// Empty reports whether either dimension is zero or negative
func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}
