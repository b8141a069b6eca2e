package core

// Color stores RGBA channels in [0, 1]
// Out-of-range values are kept as-is; renderers decide how to clamp
type Color struct {
	R, G, B, A float64
}

// Predefined colors
var (
	Black = Color{0, 0, 0, 1}
)

// Opaque reports whether alpha is at or above 1
func (c Color) Opaque() bool {
	return c.A >= 1
}
