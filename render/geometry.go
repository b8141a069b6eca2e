package render

import (
	"math"

	"github.com/lixenwraith/peculiar-particles/core"
	"gonum.org/v1/gonum/spatial/r2"
)

// MinPointSize matches the smallest point a GL rasterizer will emit
const MinPointSize = 1.0

// Bounds is a pixel-space rectangle, half-open on the max edges
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Finite reports whether every edge is a finite number
func (b Bounds) Finite() bool {
	for _, v := range [...]float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PointBounds returns the square covered by a point of the given diameter
// centred on the pixel position of an NDC coordinate
func PointBounds(s core.Surface, pos r2.Vec, size float64) Bounds {
	if !(size >= MinPointSize) {
		size = MinPointSize
	}
	cx, cy := s.ToPixel(pos)
	half := size / 2
	return Bounds{
		MinX: cx - half,
		MinY: cy - half,
		MaxX: cx + half,
		MaxY: cy + half,
	}
}

// Span returns the integer pixel range [lo, hi) whose centres fall in [from, to)
// Results are clipped to [0, limit); NaN input yields an empty span
func Span(from, to float64, limit int) (lo, hi int) {
	l := math.Ceil(from - 0.5)
	h := math.Ceil(to - 0.5)
	if math.IsNaN(l) || math.IsNaN(h) {
		return 0, 0
	}

	l = math.Max(l, 0)
	h = math.Min(h, float64(limit))
	if h <= l {
		return 0, 0
	}
	return int(l), int(h)
}
