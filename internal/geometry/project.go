package geometry

import (
	"math"

	"wireframe-renderer/internal/model"
)

const (
	// DefaultScale is the zoom factor applied before the depth term.
	DefaultScale = 5.0
	// DefaultOffset is subtracted from z before the depth term.
	DefaultOffset = 2.0
)

// Project maps p to 2D with x' = (scale*x) / (1/(z-offset)), same for y.
// This scales linearly with depth rather than dividing by it; the formula
// is evaluated as written so results match the reference output exactly.
//
// When z == offset the depth term is a division by zero: Project returns
// {NaN, NaN} and a *SingularityError. Callers decide whether to abort or
// keep the NaN point; the rasterizer drops segments touching it.
func Project(p model.Point3D, scale, offset float64) (model.Point2D, error) {
	if p.Z == offset {
		return model.Point2D{X: math.NaN(), Y: math.NaN()}, &SingularityError{Point: -1, Z: p.Z, Offset: offset}
	}
	depth := 1 / (p.Z - offset)
	return model.Point2D{
		X: (scale * p.X) / depth,
		Y: (scale * p.Y) / depth,
	}, nil
}

// ProjectAll projects every point into a new slice of the same length.
// Singular points are kept as NaN and reported in errs with their index.
func ProjectAll(pts []model.Point3D, scale, offset float64) (out []model.Point2D, errs []error) {
	out = make([]model.Point2D, len(pts))
	for i, p := range pts {
		q, err := Project(p, scale, offset)
		if err != nil {
			if se, ok := err.(*SingularityError); ok {
				se.Point = i
			}
			errs = append(errs, err)
		}
		out[i] = q
	}
	return out, errs
}

// IsFinite reports whether both coordinates are finite.
func IsFinite(p model.Point2D) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
