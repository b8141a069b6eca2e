package raster

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/peculiar-particles/core"
	"gonum.org/v1/gonum/spatial/r2"
)

func rgb8(r *Renderer, x, y int) (uint32, uint32, uint32) {
	cr, cg, cb, _ := r.Image().At(x, y).RGBA()
	return cr >> 8, cg >> 8, cb >> 8
}

func TestRenderer_ClearAndDraw(t *testing.T) {
	r := New(64, 48)
	defer r.Close()

	r.Clear(core.Black)
	r.DrawPoint(10, r2.Vec{}, core.Color{R: 1, A: 1})
	if err := r.Err(); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if cr, cg, cb := rgb8(r, 32, 24); cr < 250 || cg != 0 || cb != 0 {
		t.Errorf("centre pixel = (%d, %d, %d), want red", cr, cg, cb)
	}
	if cr, cg, cb := rgb8(r, 2, 2); cr != 0 || cg != 0 || cb != 0 {
		t.Errorf("corner pixel = (%d, %d, %d), want black", cr, cg, cb)
	}
	// Square reaches 5px from centre horizontally, not 8
	if cr, _, _ := rgb8(r, 32+8, 24); cr != 0 {
		t.Errorf("pixel outside square painted: %d", cr)
	}
}

func TestRenderer_Overscan(t *testing.T) {
	r := New(40, 40)
	defer r.Close()
	r.SetSurface(core.NewSurface(40, 40, 1.5))

	r.Clear(core.Black)
	r.DrawPoint(4, r2.Vec{}, core.Color{G: 1, A: 1}) // pixel (20, 30)
	if _, cg, _ := rgb8(r, 20, 30); cg < 250 {
		t.Errorf("overscanned centre not painted, green=%d", cg)
	}
	if _, cg, _ := rgb8(r, 20, 20); cg != 0 {
		t.Errorf("viewport centre painted, green=%d", cg)
	}
}

func TestRenderer_SavePNG(t *testing.T) {
	r := New(16, 16)
	defer r.Close()
	r.Clear(core.Black)
	r.DrawPoint(4, r2.Vec{}, core.Color{B: 1, A: 1})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("image size %v", b)
	}
}

func TestRenderer_SavePNGError(t *testing.T) {
	r := New(4, 4)
	defer r.Close()
	if err := r.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
