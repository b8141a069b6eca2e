package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/peculiar-particles/config"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/engine"
	"github.com/lixenwraith/peculiar-particles/input"
	"github.com/lixenwraith/peculiar-particles/render/window"
)

// windowGame adapts the frame loop to ebiten.Game
// Draw is the refresh source; Update only samples input
type windowGame struct {
	ctx      *engine.Context
	loop     *engine.Loop
	sched    *engine.TickScheduler
	renderer *window.Renderer
	tracker  *input.Tracker
	overscan float64

	width, height int
}

func (g *windowGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.width && y < g.height {
		g.tracker.Move(float64(x), float64(y))
	} else {
		g.tracker.Leave()
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	if g.loop.State() == engine.StateIdle {
		g.loop.Start()
		return
	}
	g.sched.Tick()
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *windowGame) resize(width, height int) {
	g.width, g.height = width, height
	s := core.NewSurface(width, height, g.overscan)
	g.renderer.SetSurface(s)
	g.ctx.Resize(s)
	log.Printf("window: surface %dx%d", s.Width, s.Height)
}

func newWindowGame(cfg *config.Config) (*windowGame, error) {
	surface := core.NewSurface(cfg.Window.Width, cfg.Window.Height, cfg.Overscan)
	renderer := window.New(surface)
	sched := engine.NewTickScheduler()

	ctx, loop, err := newSimulation(cfg, surface, renderer, sched)
	if err != nil {
		return nil, err
	}

	return &windowGame{
		ctx:      ctx,
		loop:     loop,
		sched:    sched,
		renderer: renderer,
		tracker:  input.NewTracker(ctx),
		overscan: cfg.Overscan,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}, nil
}

func runWindow(cfg *config.Config) error {
	g, err := newWindowGame(cfg)
	if err != nil {
		return err
	}

	cue := newCue(cfg)
	defer cue.Close()
	g.tracker.OnEnter(cue.Enter)
	g.tracker.OnLeave(cue.Leave)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FrameRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	log.Printf("window: closed after %d frames", g.loop.Frames())
	return nil
}
