package render

import (
	"github.com/lixenwraith/peculiar-particles/core"
	"gonum.org/v1/gonum/spatial/r2"
)

// Renderer paints frames for the frame loop
type Renderer interface {
	// Clear fills the whole surface with a color
	Clear(c core.Color)

	// DrawPoint paints one square point of the given diameter at an NDC position
	DrawPoint(size float64, pos r2.Vec, c core.Color)
}

// Presenter is optionally implemented by renderers that buffer a frame
// and need an explicit flush once all points are drawn
type Presenter interface {
	Present()
}
