package geometry

import (
	"errors"
	"testing"

	"wireframe-renderer/internal/model"
)

func TestFaceEdges(t *testing.T) {
	got, err := FaceEdges(model.Face{0, 1, 2}, 3)
	if err != nil {
		t.Fatalf("FaceEdges: %v", err)
	}
	want := [3]model.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2}}
	if got != want {
		t.Errorf("FaceEdges = %v, want %v", got, want)
	}
}

func TestFaceEdgesOutOfRange(t *testing.T) {
	tests := []struct {
		face model.Face
		n    int
		bad  int
	}{
		{model.Face{0, 1, 3}, 3, 3},
		{model.Face{-1, 0, 1}, 3, -1},
		{model.Face{0, 0, 0}, 0, 0},
	}
	for _, tt := range tests {
		_, err := FaceEdges(tt.face, tt.n)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("FaceEdges(%v, %d) err = %v, want ErrIndexOutOfRange", tt.face, tt.n, err)
			continue
		}
		var ie *IndexError
		if errors.As(err, &ie) && ie.Index != tt.bad {
			t.Errorf("FaceEdges(%v, %d) bad index = %d, want %d", tt.face, tt.n, ie.Index, tt.bad)
		}
	}
}

func TestExtractEdgesKeepsDuplicates(t *testing.T) {
	faces := []model.Face{{0, 1, 2}, {0, 2, 3}, {0, 1, 2}}
	got, err := ExtractEdges(faces, 4)
	if err != nil {
		t.Fatalf("ExtractEdges: %v", err)
	}
	if len(got) != 3*len(faces) {
		t.Fatalf("len = %d, want %d", len(got), 3*len(faces))
	}
	want := []model.Edge{
		{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2},
		{A: 0, B: 2}, {A: 2, B: 3}, {A: 0, B: 3},
		{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExtractEdgesReportsFace(t *testing.T) {
	_, err := ExtractEdges([]model.Face{{0, 1, 2}, {1, 2, 3}}, 3)
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *IndexError", err)
	}
	if ie.Face != 1 || ie.Index != 3 || ie.Len != 3 {
		t.Errorf("IndexError = %+v", ie)
	}
}

func TestSegments(t *testing.T) {
	pts3 := []model.Point3D{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	pts2 := []model.Point2D{{X: 0, Y: 0}, {X: -10, Y: 0}, {X: 0, Y: -10}}
	edges := []model.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2}}

	s3 := Segments3D(edges, pts3)
	s2 := Segments2D(edges, pts2)
	if len(s3) != 3 || len(s2) != 3 {
		t.Fatalf("len = %d/%d, want 3", len(s3), len(s2))
	}
	for i, e := range edges {
		if s3[i].From != pts3[e.A] || s3[i].To != pts3[e.B] {
			t.Errorf("3D segment %d = %v", i, s3[i])
		}
		if s2[i].From != pts2[e.A] || s2[i].To != pts2[e.B] {
			t.Errorf("2D segment %d = %v", i, s2[i])
		}
	}
}
