package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/peculiar-particles/audio"
	"github.com/lixenwraith/peculiar-particles/config"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/engine"
	"github.com/lixenwraith/peculiar-particles/render"
)

// errWebFrontend is returned when the browser frontend is requested natively
var errWebFrontend = errors.New("web frontend is built from cmd/peculiar-particles-web with GOOS=js GOARCH=wasm")

// options holds command-line state that is not part of config.Config
type options struct {
	configPath string
	debug      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, opts, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "peculiar-particles: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: frontend=%s motion=%s particles=%d", cfg.Frontend, cfg.Motion, cfg.Particles)

	if err := runFrontend(cfg, opts); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(stderr, "peculiar-particles: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig resolves defaults, the TOML file, environment and flags, in that order
func loadConfig(args []string, stderr io.Writer) (*config.Config, *options, error) {
	fs := flag.NewFlagSet("peculiar-particles", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.BoolVar(&opts.debug, "debug", false, "write logs to logs/peculiar-particles.log")
	frontend := fs.String("frontend", "", "terminal, window or snapshot")
	motion := fs.String("motion", "", "linear or orbital")
	particles := fs.Int("particles", 0, "particle count")
	frames := fs.Int("frames", 0, "snapshot frame count")
	out := fs.String("out", "", "snapshot PNG path")
	sound := fs.Bool("sound", false, "play pointer enter/leave cues")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	// Only flags given on the command line override
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = *frontend
		case "motion":
			cfg.Motion = *motion
		case "particles":
			cfg.Particles = *particles
		case "frames":
			cfg.Snapshot.Frames = *frames
		case "out":
			cfg.Snapshot.Output = *out
		case "sound":
			cfg.Audio.Enabled = *sound
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, opts, nil
}

func runFrontend(cfg *config.Config, opts *options) error {
	switch cfg.Frontend {
	case config.FrontendTerminal:
		return runTerminal(cfg)
	case config.FrontendWindow:
		return runWindow(cfg)
	case config.FrontendSnapshot:
		return runSnapshot(cfg, opts.debug)
	case config.FrontendWeb:
		return errWebFrontend
	default:
		return fmt.Errorf("%w: unknown frontend %q", config.ErrInvalid, cfg.Frontend)
	}
}

// newSimulation builds the context, the initial swarm and an idle loop
func newSimulation(cfg *config.Config, surface core.Surface, r render.Renderer, s engine.Scheduler) (*engine.Context, *engine.Loop, error) {
	motion, err := cfg.MotionKind()
	if err != nil {
		return nil, nil, fmt.Errorf("motion: %w", err)
	}

	ctx := engine.NewContext(motion, surface)
	particles := core.NewSwarm(cfg.Particles)
	for i, p := range particles {
		log.Printf("particle %d: size=%.4f scale=%.4f color=%+v", i, p.Size(), p.Scale(), p.Color())
	}

	return ctx, engine.NewLoop(ctx, particles, r, s), nil
}

// newCue returns nil when audio is off or the device cannot be opened
func newCue(cfg *config.Config) *audio.Cue {
	if !cfg.Audio.Enabled {
		return nil
	}
	cue, err := audio.NewCue(cfg.Audio.SampleRate, cfg.Audio.Volume)
	if err != nil {
		log.Printf("audio unavailable, continuing without sound: %v", err)
		return nil
	}
	return cue
}
