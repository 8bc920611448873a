package mathutil

import (
	"math"
	"testing"
)

func nearVec(a, b Vec3) bool {
	return a.Sub(b).Len() < 1e-12
}

func TestRotationsOrthonormal(t *testing.T) {
	for _, m := range []Mat3{RotX(0.3), RotY(-1.1), RotZ(2.5), ViewMatrix(DefaultElevation, DefaultAzimuth)} {
		p := Mat3Mul(m, m.Transpose())
		id := Mat3Identity()
		for i := range p {
			if math.Abs(p[i]-id[i]) > 1e-12 {
				t.Fatalf("M·Mᵀ = %v, want identity", p)
			}
		}
	}
}

func TestViewMatrix(t *testing.T) {
	tests := []struct {
		name       string
		elev, azim float64
		in, want   Vec3
	}{
		// Looking along +Y from -Y: X right, Z up, -Y toward the viewer.
		{"front x", 0, -90, Vec3{1, 0, 0}, Vec3{1, 0, 0}},
		{"front z", 0, -90, Vec3{0, 0, 1}, Vec3{0, 1, 0}},
		{"front y", 0, -90, Vec3{0, -1, 0}, Vec3{0, 0, 1}},
		// Straight down: +Y becomes screen up.
		{"top y", 90, -90, Vec3{0, 1, 0}, Vec3{0, 1, 0}},
		{"top z", 90, -90, Vec3{0, 0, 1}, Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		got := ViewMatrix(tt.elev, tt.azim).MulVec3(tt.in)
		if !nearVec(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestViewMatrixDefaultUpIsUp(t *testing.T) {
	up := ViewMatrix(DefaultElevation, DefaultAzimuth).MulVec3(Vec3{0, 0, 1})
	if math.Abs(up[0]) > 1e-12 {
		t.Errorf("world up has screen x %g", up[0])
	}
	if up[1] <= 0 {
		t.Errorf("world up maps to screen y %g, want > 0", up[1])
	}
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); got != math.Pi {
		t.Errorf("Deg2Rad(180) = %g", got)
	}
	if got := Deg2Rad(-30); math.Abs(got+math.Pi/6) > 1e-15 {
		t.Errorf("Deg2Rad(-30) = %g", got)
	}
}
