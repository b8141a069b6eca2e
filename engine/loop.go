package engine

import (
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lixenwraith/peculiar-particles/render"
)

// State is the frame loop lifecycle state
type State uint8

const (
	StateIdle    State = iota // before the first frame
	StateRunning              // steady repetition
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Loop updates and draws the particle collection once per frame
// Not safe for concurrent use; all calls come from the frame goroutine
type Loop struct {
	ctx       *Context
	particles []core.Particle
	renderer  render.Renderer
	scheduler Scheduler

	state   State
	pending FrameID
	frames  uint64
}

// NewLoop creates an idle loop owning particles
func NewLoop(ctx *Context, particles []core.Particle, r render.Renderer, s Scheduler) *Loop {
	return &Loop{
		ctx:       ctx,
		particles: particles,
		renderer:  r,
		scheduler: s,
		state:     StateIdle,
	}
}

// Start moves the loop to running and renders the first frame immediately
// Calling Start again has no effect
func (l *Loop) Start() {
	if l.state != StateIdle {
		return
	}
	l.state = StateRunning
	l.Step()
}

// Step renders one frame and schedules the next
// Any previously scheduled frame is cancelled first so at most one is pending
func (l *Loop) Step() {
	l.scheduler.CancelFrame(l.pending)
	l.pending = 0

	l.renderer.Clear(core.Black)

	rule := l.ctx.Motion().Rule()
	surface, pointer := l.ctx.Surface(), l.ctx.Pointer()
	for i := range l.particles {
		p := rule(l.particles[i], surface, pointer)
		l.particles[i] = p
		l.renderer.DrawPoint(p.Size(), p.Position(), p.Color())
	}

	if p, ok := l.renderer.(render.Presenter); ok {
		p.Present()
	}

	l.frames++
	l.pending = l.scheduler.RequestFrame(l.Step)
}

// State returns the lifecycle state
func (l *Loop) State() State { return l.state }

// Frames returns the number of frames rendered
func (l *Loop) Frames() uint64 { return l.frames }

// Particles returns a copy of the current particle states in order
func (l *Loop) Particles() []core.Particle {
	out := make([]core.Particle, len(l.particles))
	copy(out, l.particles)
	return out
}
