package raster

import (
	"math"

	"wireframe-renderer/internal/model"
)

// fit maps model-space XY into a square canvas: the larger of the two
// extents fills the canvas minus a margin on each side, y points up.
type fit struct {
	cx, cy float64
	scale  float64
	half   float64
}

// newFit computes the transform from the finite entries of xy. ok is false
// when there are none.
func newFit(xy []model.Point2D, size, margin int) (f fit, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range xy {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		ok = true
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	if !ok {
		return fit{}, false
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span < 1e-9 {
		span = 1e-9
	}

	inner := size - 2*margin
	if inner < 1 {
		inner = 1
	}

	return fit{
		cx:    (minX + maxX) / 2,
		cy:    (minY + maxY) / 2,
		scale: float64(inner) / span,
		half:  float64(size) / 2,
	}, true
}

func (f fit) apply(p model.Point2D) model.Point2D {
	return model.Point2D{X: (p.X-f.cx)*f.scale + f.half, Y: -(p.Y-f.cy)*f.scale + f.half}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
