// Package window draws points into an ebiten screen image.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/render"
	"gonum.org/v1/gonum/spatial/r2"
)

// Renderer implements render.Renderer on the image handed to Game.Draw
// Calls made with no target are dropped
type Renderer struct {
	target  *ebiten.Image
	surface core.Surface
}

// New creates a renderer for a surface
func New(surface core.Surface) *Renderer {
	return &Renderer{surface: surface}
}

// SetTarget sets the image the next frame draws into
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// SetSurface sets the surface used to place NDC positions
func (r *Renderer) SetSurface(s core.Surface) {
	r.surface = s
}

// Clear fills the target
func (r *Renderer) Clear(c core.Color) {
	if r.target == nil {
		return
	}
	r.target.Fill(render.NRGBA(c))
}

// DrawPoint fills a square centred on the point position
func (r *Renderer) DrawPoint(size float64, pos r2.Vec, c core.Color) {
	if r.target == nil {
		return
	}
	b := render.PointBounds(r.surface, pos, size)
	if !b.Finite() {
		return
	}
	vector.DrawFilledRect(r.target,
		float32(b.MinX), float32(b.MinY),
		float32(b.Width()), float32(b.Height()),
		render.NRGBA(c), false)
}
