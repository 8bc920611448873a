package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a premultiplied RGBA render to targetSize×targetSize
// and returns it unpremultiplied. Filtering in premultiplied space keeps
// thin lines over a transparent background free of dark fringes.
func Downsample(img *image.RGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return unpremultiply(img)
	}

	// CatmullRom approximates Lanczos
	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return unpremultiply(dst)
}

func unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	result := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(src.Pix[si+3])
			if a > 1 {
				// divide last; 255/a is inexact and pulls exact halves down
				result.Pix[di] = clamp8(float64(src.Pix[si]) * 255 / a)
				result.Pix[di+1] = clamp8(float64(src.Pix[si+1]) * 255 / a)
				result.Pix[di+2] = clamp8(float64(src.Pix[si+2]) * 255 / a)
			}
			result.Pix[di+3] = src.Pix[si+3]
		}
	}
	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
