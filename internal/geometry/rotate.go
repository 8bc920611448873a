package geometry

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/model"
)

// RotationMode selects between the reference rotation and the textbook one.
type RotationMode int

const (
	// RotationLiteral reproduces the reference renderer bit for bit:
	// the X step derives z from the already rotated y, and the Y step
	// feeds the angle to sin/cos without converting it from degrees.
	RotationLiteral RotationMode = iota
	// RotationCorrected uses standard single-axis rotations with both
	// angles in degrees and each step reading only pre-step values.
	RotationCorrected
)

func (m RotationMode) String() string {
	switch m {
	case RotationLiteral:
		return "literal"
	case RotationCorrected:
		return "corrected"
	}
	return fmt.Sprintf("RotationMode(%d)", int(m))
}

// ParseRotationMode maps "literal" / "corrected" to a RotationMode.
func ParseRotationMode(s string) (RotationMode, error) {
	switch s {
	case "literal", "":
		return RotationLiteral, nil
	case "corrected":
		return RotationCorrected, nil
	}
	return RotationLiteral, fmt.Errorf("geometry: unknown rotation mode %q", s)
}

// Valid reports whether m is a known mode.
func (m RotationMode) Valid() bool {
	return m == RotationLiteral || m == RotationCorrected
}

// Rotate turns p about X by angleX degrees, then about Y by angleY.
// It panics on an unknown mode; callers taking modes from input should
// go through ParseRotationMode or check Valid.
func Rotate(p model.Point3D, angleX, angleY float64, mode RotationMode) model.Point3D {
	switch mode {
	case RotationLiteral:
		return rotateYLiteral(rotateXLiteral(p, angleX), angleY)
	case RotationCorrected:
		return rotateY(rotateX(p, angleX), angleY)
	}
	panic(fmt.Sprintf("geometry: unknown rotation mode %v", mode))
}

// RotateAll returns a new slice; pts is left untouched.
func RotateAll(pts []model.Point3D, angleX, angleY float64, mode RotationMode) []model.Point3D {
	out := make([]model.Point3D, len(pts))
	for i, p := range pts {
		out[i] = Rotate(p, angleX, angleY, mode)
	}
	return out
}

func rotateX(p model.Point3D, deg float64) model.Point3D {
	rads := mathutil.Deg2Rad(deg)
	c, s := math.Cos(rads), math.Sin(rads)
	return model.Point3D{
		X: p.X,
		Y: c*p.Y - s*p.Z,
		Z: s*p.Y + c*p.Z,
	}
}

func rotateY(p model.Point3D, deg float64) model.Point3D {
	rads := mathutil.Deg2Rad(deg)
	c, s := math.Cos(rads), math.Sin(rads)
	return model.Point3D{
		X: c*p.X + s*p.Z,
		Y: p.Y,
		Z: -s*p.X + c*p.Z,
	}
}

func rotateXLiteral(p model.Point3D, deg float64) model.Point3D {
	rads := mathutil.Deg2Rad(deg)
	y := math.Cos(rads)*p.Y - math.Sin(rads)*p.Z
	z := math.Sin(rads)*y + math.Cos(rads)*p.Z
	return model.Point3D{X: p.X, Y: y, Z: z}
}

func rotateYLiteral(p model.Point3D, theta float64) model.Point3D {
	x := math.Cos(theta)*p.X + math.Sin(theta)*p.Z
	z := -math.Sin(theta)*x + math.Cos(theta)*p.Z
	return model.Point3D{X: x, Y: p.Y, Z: z}
}
