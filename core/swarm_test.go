package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const epsilon = 1e-12

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// TestNewSwarm_Deterministic verifies repeated initialization is bit-identical
func TestNewSwarm_Deterministic(t *testing.T) {
	for _, n := range []int{1, 2, 10, 257} {
		a := NewSwarm(n)
		b := NewSwarm(n)
		if len(a) != n || len(b) != n {
			t.Fatalf("n=%d: got lengths %d and %d", n, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("n=%d particle %d differs: %+v vs %+v", n, i, a[i], b[i])
			}
		}
	}
}

// TestNewSwarm_TwoParticles checks the concrete two-particle layout
func TestNewSwarm_TwoParticles(t *testing.T) {
	ps := NewSwarm(2)

	want := []struct {
		size  float64
		red   float64
		scale float64
	}{
		{math.Log(100000), 0.2 + 0.8/3, 1.0 / 6},
		{math.Log(100001), 0.2 + 1.6/3, 1.0 / 3},
	}

	for i, w := range want {
		p := ps[i]
		if p.Size() != w.size {
			t.Errorf("particle %d size: got %v, want %v", i, p.Size(), w.size)
		}
		if !approx(p.Color().R, w.red) || p.Color().G != 0 || p.Color().B != 0 || p.Color().A != 1 {
			t.Errorf("particle %d color: got %+v, want red %v", i, p.Color(), w.red)
		}
		if !approx(p.Scale(), w.scale) {
			t.Errorf("particle %d scale: got %v, want %v", i, p.Scale(), w.scale)
		}
		if p.Position() != (r2.Vec{}) || p.Velocity() != (r2.Vec{}) {
			t.Errorf("particle %d should start at rest in the center, got pos=%v vel=%v", i, p.Position(), p.Velocity())
		}
	}
}

// TestNewSwarm_Ramps verifies size, red channel and scale strictly increase
func TestNewSwarm_Ramps(t *testing.T) {
	ps := NewSwarm(10)
	for i := 1; i < len(ps); i++ {
		prev, cur := ps[i-1], ps[i]
		if cur.Size() <= prev.Size() {
			t.Errorf("size not increasing at %d: %v <= %v", i, cur.Size(), prev.Size())
		}
		if cur.Color().R <= prev.Color().R {
			t.Errorf("red not increasing at %d: %v <= %v", i, cur.Color().R, prev.Color().R)
		}
		if cur.Scale() <= prev.Scale() {
			t.Errorf("scale not increasing at %d: %v <= %v", i, cur.Scale(), prev.Scale())
		}
	}
	for i, p := range ps {
		if r := p.Color().R; r <= 0.2 || r > 1.0 {
			t.Errorf("particle %d red %v outside (0.2, 1.0]", i, r)
		}
	}
}

func TestNewSwarm_Empty(t *testing.T) {
	if got := NewSwarm(0); len(got) != 0 {
		t.Errorf("expected empty swarm, got %d particles", len(got))
	}
	if got := NewSwarm(-3); len(got) != 0 {
		t.Errorf("expected empty swarm for negative count, got %d particles", len(got))
	}
}

// TestParticle_Advance verifies only the motion pair changes
func TestParticle_Advance(t *testing.T) {
	p := NewParticle(3, r2.Vec{X: 0.1, Y: 0.2}, r2.Vec{}, Color{R: 1, A: 1}, 0.5)
	q := p.Advance(r2.Vec{X: 0.4, Y: -0.4}, r2.Vec{X: 0.3, Y: -0.6})

	if q.Size() != p.Size() || q.Color() != p.Color() || q.Scale() != p.Scale() {
		t.Errorf("fixed fields changed: %+v -> %+v", p, q)
	}
	if q.Position() != (r2.Vec{X: 0.4, Y: -0.4}) || q.Velocity() != (r2.Vec{X: 0.3, Y: -0.6}) {
		t.Errorf("unexpected motion pair: pos=%v vel=%v", q.Position(), q.Velocity())
	}
	if p.Position() != (r2.Vec{X: 0.1, Y: 0.2}) {
		t.Errorf("Advance mutated the receiver: %v", p.Position())
	}
}
