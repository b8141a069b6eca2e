package render

import (
	"image/color"
	"math"

	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lucasb-eyer/go-colorful"
)

// Colorful drops alpha and returns the color channels
func Colorful(c core.Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Over composites src on top of dst using src alpha
func Over(dst colorful.Color, src core.Color) colorful.Color {
	a := clamp01(src.A)
	if a >= 1 {
		return Colorful(src)
	}
	return dst.BlendRgb(Colorful(src), a)
}

// NRGBA converts to an 8-bit non-premultiplied color, clamping every channel
func NRGBA(c core.Color) color.NRGBA {
	r, g, b := Colorful(c).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// Hex returns the clamped "#rrggbb" form used by canvas fill styles
func Hex(c core.Color) string {
	return Colorful(c).Clamped().Hex()
}

func clamp01(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
