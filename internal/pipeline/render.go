package pipeline

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"wireframe-renderer/internal/model"
)

// View selects which wireframe a RenderRequest describes.
type View int

const (
	View3D View = iota
	View2D
)

func (v View) String() string {
	switch v {
	case View3D:
		return "3d"
	case View2D:
		return "2d"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// RenderRequest is the geometry for one image. Exactly one of Points3D
// and Points2D is set, matching View. Edges index into that slice.
type RenderRequest struct {
	View     View
	Points3D []model.Point3D
	Points2D []model.Point2D
	Faces    []model.Face
	Edges    []model.Edge
}

// Renderer draws a request and persists the image.
type Renderer interface {
	Render(req RenderRequest) error
}

// Requests returns the 3D and 2D render requests for r.
func (r *Result) Requests() []RenderRequest {
	return []RenderRequest{
		{View: View3D, Points3D: r.Rotated, Faces: r.Faces, Edges: r.Edges3D},
		{View: View2D, Points2D: r.Projected, Faces: r.Faces, Edges: r.Edges2D},
	}
}

// Render hands both views to rd concurrently; they share no mutable data.
// It returns the first error.
func Render(r *Result, rd Renderer) error {
	var g errgroup.Group
	for _, req := range r.Requests() {
		g.Go(func() error {
			if err := rd.Render(req); err != nil {
				return fmt.Errorf("pipeline: render %s: %w", req.View, err)
			}
			return nil
		})
	}
	return g.Wait()
}
