package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/lixenwraith/peculiar-particles/config"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/engine"
	"github.com/lixenwraith/peculiar-particles/render/raster"
)

// runSnapshot renders cfg.Snapshot.Frames frames headlessly and saves the last one
func runSnapshot(cfg *config.Config, debug bool) error {
	if debug {
		gg.SetLogger(slog.New(slog.NewTextHandler(log.Writer(), nil)))
	}

	sc := cfg.Snapshot
	r := raster.New(sc.Width, sc.Height)
	defer r.Close()

	surface := core.NewSurface(sc.Width, sc.Height, cfg.Overscan)
	r.SetSurface(surface)

	sched := engine.NewTickScheduler()
	ctx, loop, err := newSimulation(cfg, surface, r, sched)
	if err != nil {
		return err
	}
	if p := cfg.SnapshotPointer(); p.Present {
		ctx.MovePointer(p.X, p.Y)
	}

	loop.Start()
	for loop.Frames() < uint64(sc.Frames) && sched.Tick() {
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}

	if err := r.SavePNG(sc.Output); err != nil {
		return err
	}
	log.Printf("snapshot: %d frames, %dx%d, written to %s", loop.Frames(), sc.Width, sc.Height, sc.Output)
	return nil
}
