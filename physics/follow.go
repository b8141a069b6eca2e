package physics

import (
	"github.com/lixenwraith/peculiar-particles/core"
	"gonum.org/v1/gonum/spatial/r2"
)

// LinearFollow moves a particle a fixed fraction of the way to the pointer
// velocity = (target - position) * scale, then position += velocity
// Without a pointer the particle is returned unchanged
// Scale >= 1 overshoots and may diverge; it is not clamped
func LinearFollow(p core.Particle, s core.Surface, ptr core.Pointer) core.Particle {
	if !ptr.Present {
		return p
	}

	target := s.ToNDC(ptr.X, ptr.Y)
	vel := r2.Scale(p.Scale(), r2.Sub(target, p.Position()))
	return p.Advance(r2.Add(p.Position(), vel), vel)
}

// OrbitalFollow pulls a particle toward the pointer while pushing it along the
// perpendicular, which spirals it in
// The stored velocity is never changed; its Y component is added to the
// position step and stays zero for particles built by core.NewSwarm
func OrbitalFollow(p core.Particle, s core.Surface, ptr core.Pointer) core.Particle {
	if !ptr.Present {
		return p
	}

	target := s.ToNDC(ptr.X, ptr.Y)
	pos, vel, k := p.Position(), p.Velocity(), p.Scale()

	toCenter := r2.Sub(target, pos)
	perp := r2.Vec{X: -toCenter.Y, Y: toCenter.X}

	next := r2.Vec{
		X: pos.X + toCenter.X*k + perp.X*k,
		Y: pos.Y + toCenter.Y*k + perp.Y*k + vel.Y,
	}
	return p.Advance(next, vel)
}
