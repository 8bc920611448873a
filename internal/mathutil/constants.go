package mathutil

// Camera defaults for the 3D wireframe view (z up, orthographic).
const (
	DefaultElevation = 30.0
	DefaultAzimuth   = -60.0
)

// ViewMatrix returns the camera rotation for a viewer at the given elevation
// above the XY plane and azimuth from +X, both in degrees.
// Screen X/Y are the first two rows of the result; the third row is depth
// (larger is closer to the viewer).
// Rx(elev - 90°) @ Rz(-azim - 90°)
func ViewMatrix(elevDeg, azimDeg float64) Mat3 {
	return Mat3Mul(RotX(Deg2Rad(elevDeg-90)), RotZ(Deg2Rad(-azimDeg-90)))
}
