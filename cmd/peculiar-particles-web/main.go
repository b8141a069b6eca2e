//go:build js && wasm

package main

import (
	"log"
	"syscall/js"

	"github.com/lixenwraith/peculiar-particles/config"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/engine"
	"github.com/lixenwraith/peculiar-particles/input"
	"github.com/lixenwraith/peculiar-particles/render/web"
)

func main() {
	cfg := config.Default()
	cfg.Frontend = config.FrontendWeb
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	motion, err := cfg.MotionKind()
	if err != nil {
		log.Fatalf("motion: %v", err)
	}

	canvas, err := web.Lookup(cfg.CanvasID)
	if err != nil {
		log.Fatalf("canvas: %v", err)
	}

	window := js.Global()
	surface := windowSurface(window, cfg.Overscan)
	canvas.Resize(surface)

	ctx := engine.NewContext(motion, surface)
	particles := core.NewSwarm(cfg.Particles)
	for i, p := range particles {
		log.Printf("particle %d: size=%.4f scale=%.4f color=%+v", i, p.Size(), p.Scale(), p.Color())
	}

	tracker := input.NewTracker(ctx)
	loop := engine.NewLoop(ctx, particles, canvas, web.NewFrameScheduler())

	// Listeners live for the page lifetime and are never released
	onMove := js.FuncOf(func(_ js.Value, args []js.Value) any {
		e := args[0]
		tracker.Move(e.Get("clientX").Float(), e.Get("clientY").Float())
		return nil
	})
	onOut := js.FuncOf(func(js.Value, []js.Value) any {
		tracker.Leave()
		return nil
	})
	onResize := js.FuncOf(func(js.Value, []js.Value) any {
		s := windowSurface(window, cfg.Overscan)
		canvas.Resize(s)
		ctx.Resize(s)
		return nil
	})
	canvas.Element().Call("addEventListener", "mousemove", onMove)
	canvas.Element().Call("addEventListener", "mouseout", onOut)
	window.Call("addEventListener", "resize", onResize)

	loop.Start()
	select {}
}

// windowSurface sizes the surface from the browser viewport
func windowSurface(window js.Value, overscan float64) core.Surface {
	return core.NewSurface(window.Get("innerWidth").Int(), window.Get("innerHeight").Int(), overscan)
}
