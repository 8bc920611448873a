package geometry

import "wireframe-renderer/internal/model"

// Segment3D is an edge resolved to 3D positions.
type Segment3D struct {
	From, To model.Point3D
}

// Segment2D is an edge resolved to projected positions.
type Segment2D struct {
	From, To model.Point2D
}

// FaceEdges returns (i,j), (j,k), (i,k) for a face over n points.
func FaceEdges(f model.Face, n int) ([3]model.Edge, error) {
	for _, idx := range f {
		if idx < 0 || idx >= n {
			return [3]model.Edge{}, &IndexError{Face: -1, Index: idx, Len: n}
		}
	}
	return [3]model.Edge{
		{A: f[0], B: f[1]},
		{A: f[1], B: f[2]},
		{A: f[0], B: f[2]},
	}, nil
}

// ExtractEdges emits three edges per face in face order. Edges shared by
// neighbouring faces are emitted once per face.
func ExtractEdges(faces []model.Face, n int) ([]model.Edge, error) {
	out := make([]model.Edge, 0, 3*len(faces))
	for i, f := range faces {
		e, err := FaceEdges(f, n)
		if err != nil {
			err.(*IndexError).Face = i
			return nil, err
		}
		out = append(out, e[:]...)
	}
	return out, nil
}

// Segments3D resolves edges against pts. Edges must already be in range.
func Segments3D(edges []model.Edge, pts []model.Point3D) []Segment3D {
	out := make([]Segment3D, len(edges))
	for i, e := range edges {
		out[i] = Segment3D{From: pts[e.A], To: pts[e.B]}
	}
	return out
}

// Segments2D resolves edges against projected points at the same indices.
func Segments2D(edges []model.Edge, pts []model.Point2D) []Segment2D {
	out := make([]Segment2D, len(edges))
	for i, e := range edges {
		out[i] = Segment2D{From: pts[e.A], To: pts[e.B]}
	}
	return out
}
