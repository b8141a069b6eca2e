// Package raster renders points with the gg software rasterizer for
// headless snapshots.
package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/render"
	"gonum.org/v1/gonum/spatial/r2"
)

// Renderer implements render.Renderer on a gg.Context
// The context covers the visible viewport; surface overscan is clipped
type Renderer struct {
	dc      *gg.Context
	surface core.Surface
	err     error
}

// New creates a renderer with a width x height pixel viewport
func New(width, height int) *Renderer {
	return &Renderer{
		dc:      gg.NewContext(width, height),
		surface: core.Surface{Width: width, Height: height},
	}
}

// SetSurface sets the surface used to place NDC positions
func (r *Renderer) SetSurface(s core.Surface) {
	r.surface = s
}

// Clear fills the context with a color
func (r *Renderer) Clear(c core.Color) {
	r.dc.ClearWithColor(gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// DrawPoint fills a square centred on the point position
// The first fill error is kept and reported by Err
func (r *Renderer) DrawPoint(size float64, pos r2.Vec, c core.Color) {
	b := render.PointBounds(r.surface, pos, size)
	if !b.Finite() {
		return
	}
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
	r.dc.DrawRectangle(b.MinX, b.MinY, b.Width(), b.Height())
	if err := r.dc.Fill(); err != nil && r.err == nil {
		r.err = fmt.Errorf("fill point at %v: %w", pos, err)
	}
}

// Err returns the first drawing error
func (r *Renderer) Err() error {
	return r.err
}

// Image returns the rendered pixels
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current frame to path
func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context
func (r *Renderer) Close() error {
	return r.dc.Close()
}
