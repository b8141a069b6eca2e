package halfblock

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/peculiar-particles/core"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

var red = core.Color{R: 1, A: 1}

func newTestRenderer(t *testing.T, cols, rows int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	r := New(screen, 1)
	w, h := r.Viewport()
	r.SetSurface(core.Surface{Width: w, Height: h})
	return r, screen
}

func TestRenderer_Viewport(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 5)
	if w, h := r.Viewport(); w != 10 || h != 10 {
		t.Errorf("viewport = %dx%d, want 10x10", w, h)
	}

	r.Resize(20, 8)
	if w, h := r.Viewport(); w != 20 || h != 16 {
		t.Errorf("viewport after resize = %dx%d, want 20x16", w, h)
	}
}

func TestRenderer_DrawPoint(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 5)
	r.Clear(core.Black)
	r.DrawPoint(2, r2.Vec{}, red)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 4 && x < 6 && y >= 4 && y < 6
			got := r.Pixel(x, y)
			if inside && got.R != 1 {
				t.Errorf("pixel (%d, %d) should be red, got %+v", x, y, got)
			}
			if !inside && got != (colorful.Color{}) {
				t.Errorf("pixel (%d, %d) should be black, got %+v", x, y, got)
			}
		}
	}
}

func TestRenderer_ClearResets(t *testing.T) {
	r, _ := newTestRenderer(t, 6, 3)
	r.DrawPoint(50, r2.Vec{}, red)
	r.Clear(core.Black)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if got := r.Pixel(x, y); got != (colorful.Color{}) {
				t.Fatalf("pixel (%d, %d) not cleared: %+v", x, y, got)
			}
		}
	}
}

func TestRenderer_ClipsOverscan(t *testing.T) {
	r, _ := newTestRenderer(t, 10, 5)
	r.SetSurface(core.NewSurface(10, 10, 2))
	r.Clear(core.Black)

	// Bottom edge of the surface lies below the viewport
	r.DrawPoint(4, r2.Vec{X: 0, Y: -1}, red)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := r.Pixel(x, y); got != (colorful.Color{}) {
				t.Errorf("pixel (%d, %d) painted by clipped point", x, y)
			}
		}
	}

	// Far outside and non-finite positions are ignored
	r.DrawPoint(4, r2.Vec{X: 50, Y: 50}, red)
	r.SetSurface(core.Surface{})
	r.DrawPoint(4, r2.Vec{X: 0.5, Y: 0.5}, red)
}

func TestRenderer_Present(t *testing.T) {
	r, screen := newTestRenderer(t, 10, 5)
	r.Clear(core.Black)
	r.DrawPoint(2, r2.Vec{}, red) // pixels x 4..5, y 4..5 -> cells (4..5, 2)
	r.DrawPoint(1, r2.Vec{X: -0.875, Y: 0.125}, core.Color{B: 1, A: 1}) // pixel (0, 4)
	r.Present()

	tests := []struct {
		col, row int
		fg, bg   [3]int32
		desc     string
	}{
		{4, 2, [3]int32{255, 0, 0}, [3]int32{255, 0, 0}, "point fills both halves"},
		{5, 2, [3]int32{255, 0, 0}, [3]int32{255, 0, 0}, "point fills both halves"},
		{4, 1, [3]int32{0, 0, 0}, [3]int32{0, 0, 0}, "above the point"},
		{0, 2, [3]int32{0, 0, 255}, [3]int32{0, 0, 0}, "blue pixel in upper half"},
	}

	for _, tt := range tests {
		mainc, _, style, _ := screen.GetContent(tt.col, tt.row)
		if mainc != upperHalf {
			t.Errorf("%s: cell (%d, %d) rune %q", tt.desc, tt.col, tt.row, mainc)
		}
		fg, bg, _ := style.Decompose()
		fr, fg2, fb := fg.RGB()
		br, bg2, bb := bg.RGB()
		if [3]int32{fr, fg2, fb} != tt.fg || [3]int32{br, bg2, bb} != tt.bg {
			t.Errorf("%s: cell (%d, %d) fg=%v bg=%v, want fg=%v bg=%v",
				tt.desc, tt.col, tt.row, [3]int32{fr, fg2, fb}, [3]int32{br, bg2, bb}, tt.fg, tt.bg)
		}
	}
}
