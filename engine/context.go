package engine

import (
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/physics"
)

// Context holds the per-run state read by every frame
// Main-loop exclusive: input handlers and the frame loop share one goroutine
type Context struct {
	motion  physics.Motion
	surface core.Surface
	pointer core.Pointer
}

// NewContext creates a context with no pointer
func NewContext(motion physics.Motion, surface core.Surface) *Context {
	return &Context{
		motion:  motion,
		surface: surface,
		pointer: core.NoPointer,
	}
}

// Motion returns the rule selected for this run
func (c *Context) Motion() physics.Motion { return c.motion }

// Surface returns the current drawing surface dimensions
func (c *Context) Surface() core.Surface { return c.surface }

// Pointer returns the latest pointer state
func (c *Context) Pointer() core.Pointer { return c.pointer }

// MovePointer records a pointer position in surface pixels
func (c *Context) MovePointer(x, y float64) {
	c.pointer = core.PointerAt(x, y)
}

// LeavePointer marks the pointer as absent
func (c *Context) LeavePointer() {
	c.pointer = core.NoPointer
}

// Resize replaces the surface dimensions
func (c *Context) Resize(s core.Surface) {
	c.surface = s
}
