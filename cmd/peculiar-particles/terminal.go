package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/peculiar-particles/config"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/engine"
	"github.com/lixenwraith/peculiar-particles/input"
	"github.com/lixenwraith/peculiar-particles/render/halfblock"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("terminal frontend needs a TTY on stdin and stdout")

func runTerminal(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before printing a crash so the trace stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPECULIAR-PARTICLES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	renderer := halfblock.New(screen, cfg.Terminal.PointScale)
	surface := terminalSurface(renderer, cfg.Overscan)
	renderer.SetSurface(surface)

	sched := engine.NewTickScheduler()
	ctx, loop, err := newSimulation(cfg, surface, renderer, sched)
	if err != nil {
		return err
	}

	cue := newCue(cfg)
	defer cue.Close()

	tracker := input.NewTracker(ctx)
	tracker.OnEnter(cue.Enter)
	tracker.OnLeave(cue.Leave)

	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	loop.Start()
	log.Printf("terminal: surface %dx%d, loop %s", surface.Width, surface.Height, loop.State())

	for {
		select {
		case ev := <-events:
			switch tracker.HandleTerminal(ev) {
			case input.ActionQuit:
				log.Printf("terminal: quit after %d frames", loop.Frames())
				return nil
			case input.ActionResize:
				screen.Sync()
				renderer.Resize(screen.Size())
				surface = terminalSurface(renderer, cfg.Overscan)
				renderer.SetSurface(surface)
				ctx.Resize(surface)
				log.Printf("terminal: resized to %dx%d", surface.Width, surface.Height)
			}

		case <-ticker.C:
			sched.Tick()
		}
	}
}

// terminalSurface derives the surface from the renderer's pixel viewport
func terminalSurface(r *halfblock.Renderer, overscan float64) core.Surface {
	w, h := r.Viewport()
	return core.NewSurface(w, h, overscan)
}
