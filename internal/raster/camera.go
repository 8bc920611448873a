package raster

import (
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/model"
)

// viewProject applies an orthographic camera: rotate by R, keep screen X/Y.
// Non-finite inputs stay non-finite and are filtered downstream.
func viewProject(pts []model.Point3D, R mathutil.Mat3) []model.Point2D {
	out := make([]model.Point2D, len(pts))
	for i, p := range pts {
		t := R.MulVec3(mathutil.Vec3{p.X, p.Y, p.Z})
		out[i] = model.Point2D{X: t[0], Y: t[1]}
	}
	return out
}
