//go:build js && wasm

package web

import (
	"syscall/js"

	"github.com/lixenwraith/peculiar-particles/engine"
)

// FrameScheduler implements engine.Scheduler with requestAnimationFrame
// Callbacks run on the browser event loop, one at a time
type FrameScheduler struct {
	window  js.Value
	pending map[engine.FrameID]js.Func
}

// NewFrameScheduler binds to the global window
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		window:  js.Global(),
		pending: make(map[engine.FrameID]js.Func),
	}
}

// RequestFrame asks the browser to run fn before the next repaint
func (s *FrameScheduler) RequestFrame(fn func()) engine.FrameID {
	var id engine.FrameID
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		delete(s.pending, id)
		cb.Release()
		fn()
		return nil
	})
	id = engine.FrameID(s.window.Call("requestAnimationFrame", cb).Int())
	s.pending[id] = cb
	return id
}

// CancelFrame cancels a requested frame and releases its callback
func (s *FrameScheduler) CancelFrame(id engine.FrameID) {
	cb, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	s.window.Call("cancelAnimationFrame", int(id))
	cb.Release()
}
