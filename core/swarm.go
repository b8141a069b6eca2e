package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// sizeBase keeps ln(i + sizeBase) nearly constant across the swarm
const sizeBase = 100000

// NewSwarm creates the fixed particle collection for n particles
// Later particles are slightly larger, redder and faster; all start at rest
// in the surface center
func NewSwarm(n int) []Particle {
	if n <= 0 {
		return []Particle{}
	}

	particles := make([]Particle, n)
	for i := range particles {
		red := float64(i+1)/float64(n+1)*0.8 + 0.2
		particles[i] = NewParticle(
			math.Log(float64(i+sizeBase)),
			r2.Vec{},
			r2.Vec{},
			Color{R: red, G: 0, B: 0, A: 1},
			float64(i+1)/float64(3*n),
		)
	}
	return particles
}
