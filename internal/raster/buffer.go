package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// FrameBuffer is a premultiplied RGBA canvas plus a reusable coverage
// rasterizer. Shapes queued with Line and Dot accumulate into one path
// and are composited by Flush in a single pass per color.
type FrameBuffer struct {
	Width  int
	Height int
	Img    *image.RGBA

	rast    *vector.Rasterizer
	pending bool
}

// NewFrameBuffer allocates a canvas filled with bg.
func NewFrameBuffer(w, h int, bg color.Color) *FrameBuffer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r, g, b, a := bg.RGBA()
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(r >> 8)
		img.Pix[i+1] = uint8(g >> 8)
		img.Pix[i+2] = uint8(b >> 8)
		img.Pix[i+3] = uint8(a >> 8)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Img:    img,
		rast:   vector.NewRasterizer(w, h),
	}
}

// Line queues a segment of the given width as a quad. Every quad has the
// same winding, so overlaps accumulate instead of cancelling.
func (fb *FrameBuffer) Line(x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		fb.Dot(x0, y0, width/2)
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	fb.rast.MoveTo(float32(x0+nx), float32(y0+ny))
	fb.rast.LineTo(float32(x1+nx), float32(y1+ny))
	fb.rast.LineTo(float32(x1-nx), float32(y1-ny))
	fb.rast.LineTo(float32(x0-nx), float32(y0-ny))
	fb.rast.ClosePath()
	fb.pending = true
}

// Dot queues a filled octagon approximating a disc.
func (fb *FrameBuffer) Dot(x, y, radius float64) {
	const sides = 8
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		px, py := float32(x+radius*math.Cos(a)), float32(y+radius*math.Sin(a))
		if i == 0 {
			fb.rast.MoveTo(px, py)
		} else {
			fb.rast.LineTo(px, py)
		}
	}
	fb.rast.ClosePath()
	fb.pending = true
}

// Flush composites everything queued since the last Flush in color c.
func (fb *FrameBuffer) Flush(c color.Color) {
	if !fb.pending {
		return
	}
	fb.rast.Draw(fb.Img, fb.Img.Bounds(), image.NewUniform(c), image.Point{})
	fb.rast.Reset(fb.Width, fb.Height)
	fb.pending = false
}
