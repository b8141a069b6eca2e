// Package halfblock renders points into a tcell screen at twice the
// vertical resolution of the terminal. Every cell shows the upper half block
// with the upper pixel as foreground and the lower pixel as background.
package halfblock

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/render"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// upperHalf is drawn in every cell
const upperHalf = '▀'

// Renderer implements render.Renderer and render.Presenter on a tcell screen
type Renderer struct {
	screen     tcell.Screen
	surface    core.Surface
	pointScale float64

	width, height int // pixel viewport
	pixels        []colorful.Color
}

// New sizes the pixel buffer from the screen
// pointScale multiplies every point size
func New(screen tcell.Screen, pointScale float64) *Renderer {
	r := &Renderer{
		screen:     screen,
		pointScale: pointScale,
	}
	cols, rows := screen.Size()
	r.Resize(cols, rows)
	return r
}

// Resize reallocates the pixel buffer for a terminal of cols x rows cells
func (r *Renderer) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	r.width, r.height = cols, rows*2
	r.pixels = make([]colorful.Color, r.width*r.height)
}

// Viewport returns the pixel dimensions visible on screen
func (r *Renderer) Viewport() (width, height int) {
	return r.width, r.height
}

// SetSurface sets the surface used to place NDC positions
// The surface may be taller than the viewport; overscan rows are clipped
func (r *Renderer) SetSurface(s core.Surface) {
	r.surface = s
}

// Clear fills every pixel
func (r *Renderer) Clear(c core.Color) {
	for i := range r.pixels {
		r.pixels[i] = render.Over(r.pixels[i], c)
	}
}

// DrawPoint composites a square point into the pixel buffer
func (r *Renderer) DrawPoint(size float64, pos r2.Vec, c core.Color) {
	b := render.PointBounds(r.surface, pos, size*r.pointScale)
	x0, x1 := render.Span(b.MinX, b.MaxX, r.width)
	y0, y1 := render.Span(b.MinY, b.MaxY, r.height)

	for y := y0; y < y1; y++ {
		row := r.pixels[y*r.width : (y+1)*r.width]
		for x := x0; x < x1; x++ {
			row[x] = render.Over(row[x], c)
		}
	}
}

// Present writes the pixel buffer to the screen and shows it
func (r *Renderer) Present() {
	for row := 0; row < r.height/2; row++ {
		upper := r.pixels[(row*2)*r.width:]
		lower := r.pixels[(row*2+1)*r.width:]
		for col := 0; col < r.width; col++ {
			style := tcell.StyleDefault.
				Foreground(toTcell(upper[col])).
				Background(toTcell(lower[col]))
			r.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	r.screen.Show()
}

// Pixel returns the buffered color at a pixel, black outside the viewport
func (r *Renderer) Pixel(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return colorful.Color{}
	}
	return r.pixels[y*r.width+x]
}

func toTcell(c colorful.Color) tcell.Color {
	red, green, blue := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}
