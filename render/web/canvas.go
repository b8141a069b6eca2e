//go:build js && wasm

// Package web renders into an HTML canvas 2D context and schedules frames
// with requestAnimationFrame.
package web

import (
	"fmt"
	"syscall/js"

	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/render"
	"gonum.org/v1/gonum/spatial/r2"
)

// Canvas implements render.Renderer on a canvas element
type Canvas struct {
	el      js.Value
	ctx     js.Value
	surface core.Surface
}

// Lookup finds the canvas element by id and acquires its 2D context
func Lookup(id string) (*Canvas, error) {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("canvas %q not found", id)
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, fmt.Errorf("canvas %q has no 2d context", id)
	}
	return &Canvas{el: el, ctx: ctx}, nil
}

// Element returns the canvas DOM element
func (c *Canvas) Element() js.Value {
	return c.el
}

// Resize sets the canvas backing store to the surface dimensions
func (c *Canvas) Resize(s core.Surface) {
	c.surface = s
	c.el.Set("width", s.Width)
	c.el.Set("height", s.Height)
}

// Clear fills the whole canvas
func (c *Canvas) Clear(col core.Color) {
	c.fill(col)
	c.ctx.Call("fillRect", 0, 0, c.surface.Width, c.surface.Height)
}

// DrawPoint fills a square centred on the point position
func (c *Canvas) DrawPoint(size float64, pos r2.Vec, col core.Color) {
	b := render.PointBounds(c.surface, pos, size)
	if !b.Finite() {
		return
	}
	c.fill(col)
	c.ctx.Call("fillRect", b.MinX, b.MinY, b.Width(), b.Height())
}

func (c *Canvas) fill(col core.Color) {
	c.ctx.Set("globalAlpha", float64(render.NRGBA(col).A)/255)
	c.ctx.Set("fillStyle", render.Hex(col))
}
