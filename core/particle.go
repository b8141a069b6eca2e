package core

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is a single point on the drawing surface
// Size, color and scale are fixed at construction; position and velocity
// only change together through Advance
type Particle struct {
	size  float64 // point diameter hint in surface pixels
	color Color
	scale float64 // multiplier applied to computed motion

	position r2.Vec // NDC
	velocity r2.Vec // NDC per frame
}

// NewParticle builds a particle without validating its inputs
func NewParticle(size float64, position, velocity r2.Vec, color Color, scale float64) Particle {
	return Particle{
		size:     size,
		color:    color,
		scale:    scale,
		position: position,
		velocity: velocity,
	}
}

func (p Particle) Size() float64 { return p.size }
func (p Particle) Color() Color { return p.color }
func (p Particle) Scale() float64 { return p.scale }
func (p Particle) Position() r2.Vec { return p.position }
func (p Particle) Velocity() r2.Vec { return p.velocity }

// Advance returns a copy with a new position/velocity pair
func (p Particle) Advance(position, velocity r2.Vec) Particle {
	p.position = position
	p.velocity = velocity
	return p
}
