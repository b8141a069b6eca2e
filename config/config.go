package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/physics"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Frontend names
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
	FrontendSnapshot = "snapshot"
	FrontendWeb      = "web"
)

// Environment overrides
const (
	EnvAudio    = "PECULIAR_PARTICLES_AUDIO"
	EnvVolume   = "PECULIAR_PARTICLES_VOLUME"
	EnvFrontend = "PECULIAR_PARTICLES_FRONTEND"
)

// Config holds every run parameter
type Config struct {
	Particles int     `toml:"particles"`  // fixed particle count
	Motion    string  `toml:"motion"`     // linear | orbital
	Frontend  string  `toml:"frontend"`   // terminal | window | snapshot | web
	FrameRate int     `toml:"frame_rate"` // frames per second for ticker-driven frontends
	Overscan  float64 `toml:"overscan"`   // surface height / viewport height
	CanvasID  string  `toml:"canvas_id"`  // browser canvas element

	Terminal TerminalConfig `toml:"terminal"`
	Window   WindowConfig   `toml:"window"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Audio    AudioConfig    `toml:"audio"`
}

// TerminalConfig tunes the half-block terminal renderer
type TerminalConfig struct {
	PointScale float64 `toml:"point_scale"` // point size multiplier, terminal pixels are large
}

// WindowConfig sizes the desktop window
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// SnapshotConfig drives headless PNG rendering
type SnapshotConfig struct {
	Width   int       `toml:"width"`
	Height  int       `toml:"height"`
	Frames  int       `toml:"frames"`
	Output  string    `toml:"output"`
	Pointer []float64 `toml:"pointer"` // empty = absent, otherwise [x, y] in surface pixels
}

// AudioConfig controls pointer cues
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // linear, 0..1
	SampleRate int     `toml:"sample_rate"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Particles: 10,
		Motion:    physics.DefaultMotion.String(),
		Frontend:  FrontendTerminal,
		FrameRate: 60,
		Overscan:  core.DefaultOverscan,
		CanvasID:  "canvas",
		Terminal: TerminalConfig{
			PointScale: 0.25,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Peculiar Particles",
		},
		Snapshot: SnapshotConfig{
			Width:  640,
			Height: 480,
			Frames: 120,
			Output: "particles.png",
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     0.3,
			SampleRate: 44100,
		},
	}
}

// Load decodes a TOML file over the defaults
// Keys the file sets override defaults; unknown keys are rejected
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAudio); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = enabled
		}
	}

	// 0-100 converted to 0.0-1.0
	if v := os.Getenv(EnvVolume); v != "" {
		if percent, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(float64(percent)/100, 0), 1)
		}
	}

	if v := os.Getenv(EnvFrontend); v != "" {
		c.Frontend = strings.ToLower(strings.TrimSpace(v))
	}
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if c.Particles < 1 {
		return fmt.Errorf("%w: particles must be at least 1, got %d", ErrInvalid, c.Particles)
	}
	if _, err := physics.ParseMotion(c.Motion); err != nil {
		return fmt.Errorf("%w: motion: %w", ErrInvalid, err)
	}
	switch c.Frontend {
	case FrontendTerminal, FrontendWindow, FrontendSnapshot, FrontendWeb:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Frontend)
	}
	if c.FrameRate < 1 {
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalid, c.FrameRate)
	}
	if !(c.Overscan > 0) {
		return fmt.Errorf("%w: overscan must be positive, got %v", ErrInvalid, c.Overscan)
	}
	if c.CanvasID == "" {
		return fmt.Errorf("%w: canvas_id is empty", ErrInvalid)
	}
	if !(c.Terminal.PointScale > 0) {
		return fmt.Errorf("%w: terminal.point_scale must be positive, got %v", ErrInvalid, c.Terminal.PointScale)
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Snapshot.Width < 1 || c.Snapshot.Height < 1 {
		return fmt.Errorf("%w: snapshot size %dx%d", ErrInvalid, c.Snapshot.Width, c.Snapshot.Height)
	}
	if c.Snapshot.Frames < 1 {
		return fmt.Errorf("%w: snapshot.frames must be at least 1, got %d", ErrInvalid, c.Snapshot.Frames)
	}
	if c.Snapshot.Output == "" {
		return fmt.Errorf("%w: snapshot.output is empty", ErrInvalid)
	}
	if n := len(c.Snapshot.Pointer); n != 0 && n != 2 {
		return fmt.Errorf("%w: snapshot.pointer needs 0 or 2 values, got %d", ErrInvalid, n)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}
	if c.Audio.SampleRate < 1 {
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

// MotionKind returns the parsed motion selection
func (c *Config) MotionKind() (physics.Motion, error) {
	return physics.ParseMotion(c.Motion)
}

// FrameInterval returns the ticker period for FrameRate
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate < 1 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// SnapshotPointer returns the configured snapshot pointer or NoPointer
func (c *Config) SnapshotPointer() core.Pointer {
	if len(c.Snapshot.Pointer) != 2 {
		return core.NoPointer
	}
	return core.PointerAt(c.Snapshot.Pointer[0], c.Snapshot.Pointer[1])
}
