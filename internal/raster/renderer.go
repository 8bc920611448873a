package raster

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"wireframe-renderer/internal/export"
	"wireframe-renderer/internal/geometry"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/model"
	"wireframe-renderer/internal/pipeline"
	"wireframe-renderer/internal/postprocess"
)

// Options configures image output. Zero fields take defaults in Normalize.
type Options struct {
	OutputDir   string
	Name        string // file stem; views are written as <Name>-3d.<ext> and <Name>-2d.<ext>
	Format      export.Format
	Size        int
	Supersample int
	LineWidth   float64 // in output pixels
	PointRadius float64 // 2D view scatter, in output pixels
	Background  color.NRGBA
	Label       bool

	// 3D view camera in degrees; nil means default
	Elevation *float64
	Azimuth   *float64
}

// Normalize fills unset fields.
func (o *Options) Normalize() {
	if o.Name == "" {
		o.Name = "model"
	}
	if o.Format == "" {
		o.Format = export.WebP
	}
	if o.Size <= 0 {
		o.Size = 1024
	}
	if o.Supersample <= 0 {
		o.Supersample = 2
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}
	if o.PointRadius <= 0 {
		o.PointRadius = 2.5
	}
	if o.Background == (color.NRGBA{}) {
		o.Background = Black
	}
	if o.Elevation == nil {
		elev := mathutil.DefaultElevation
		o.Elevation = &elev
	}
	if o.Azimuth == nil {
		azim := mathutil.DefaultAzimuth
		o.Azimuth = &azim
	}
}

// Renderer rasterizes render requests and writes one image per view.
// It holds no mutable state, so both views may render concurrently.
type Renderer struct {
	opts Options
}

// NewRenderer returns a Renderer with normalized options.
func NewRenderer(opts Options) *Renderer {
	opts.Normalize()
	return &Renderer{opts: opts}
}

// Path returns the output file for a view.
func (r *Renderer) Path(v pipeline.View) string {
	return filepath.Join(r.opts.OutputDir, fmt.Sprintf("%s-%s.%s", r.opts.Name, v, r.opts.Format.Ext()))
}

// Render implements pipeline.Renderer.
func (r *Renderer) Render(req pipeline.RenderRequest) error {
	img, err := r.Draw(req)
	if err != nil {
		return err
	}
	return export.Save(r.Path(req.View), img, r.opts.Format)
}

// Draw rasterizes req without writing it anywhere.
//
// Segments with a non-finite endpoint (a point that hit the projection
// singularity) are dropped, as are scatter points that are not finite.
func (r *Renderer) Draw(req pipeline.RenderRequest) (*image.NRGBA, error) {
	o := r.opts
	ss := o.Supersample
	size := o.Size * ss

	var xy []model.Point2D
	switch req.View {
	case pipeline.View3D:
		xy = viewProject(req.Points3D, mathutil.ViewMatrix(*o.Elevation, *o.Azimuth))
	case pipeline.View2D:
		xy = req.Points2D
	default:
		return nil, fmt.Errorf("raster: unknown view %v", req.View)
	}

	for _, e := range req.Edges {
		if e.A < 0 || e.A >= len(xy) || e.B < 0 || e.B >= len(xy) {
			return nil, fmt.Errorf("raster: %s edge %v outside %d points", req.View, e, len(xy))
		}
	}

	fb := NewFrameBuffer(size, size, o.Background)
	margin := 16 * ss
	if o.Label {
		margin = 40 * ss
	}

	if tf, ok := newFit(xy, size, margin); ok {
		screen := make([]model.Point2D, len(xy))
		for i, p := range xy {
			screen[i] = tf.apply(p)
		}

		if req.View == pipeline.View2D {
			for _, p := range screen {
				if geometry.IsFinite(p) {
					fb.Dot(p.X, p.Y, o.PointRadius*float64(ss))
				}
			}
			fb.Flush(Palette[0])
		}

		drawEdges(fb, geometry.Segments2D(req.Edges, screen), req.View, o.LineWidth*float64(ss))
	}

	if o.Label {
		text := fmt.Sprintf("%s  %d points  %d faces", req.View, len(xy), len(req.Faces))
		if err := drawCaption(fb.Img, 8*ss, 18*ss, text, 14*float64(ss), LabelGray); err != nil {
			return nil, err
		}
	}

	return postprocess.Downsample(fb.Img, o.Size), nil
}

// drawEdges batches segments by palette color. The 3D view colors each
// face (three consecutive edges) as one wire; the 2D view colors each
// edge separately.
func drawEdges(fb *FrameBuffer, segs []geometry.Segment2D, view pipeline.View, width float64) {
	perColor := make([][]int, len(Palette))
	for i := range segs {
		k := i
		if view == pipeline.View3D {
			k = i / 3
		}
		c := k % len(Palette)
		perColor[c] = append(perColor[c], i)
	}

	for c, idx := range perColor {
		for _, i := range idx {
			a, b := segs[i].From, segs[i].To
			if !geometry.IsFinite(a) || !geometry.IsFinite(b) {
				continue
			}
			fb.Line(a.X, a.Y, b.X, b.Y, width)
		}
		fb.Flush(Palette[c])
	}
}
